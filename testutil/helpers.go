package testutil

import (
	"context"
	"testing"
)

// CleanupFunc stops what a setup call started.
type CleanupFunc func() error

// Setup starts component with a background context.
//
//	cleanup, err := testutil.Setup(srv)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer cleanup()
func Setup(component TestComponent) (CleanupFunc, error) {
	return SetupWithContext(context.Background(), component)
}

// SetupWithContext starts component with ctx. The returned CleanupFunc stops
// it with the same context.
func SetupWithContext(ctx context.Context, component TestComponent) (CleanupFunc, error) {
	if err := component.Start(ctx); err != nil {
		return nil, err
	}
	return func() error { return component.Stop(ctx) }, nil
}

// THelper ties component lifecycles to a test.
type THelper struct {
	tb  testing.TB
	ctx context.Context
}

// T returns a THelper for tb.
func T(tb testing.TB) *THelper {
	return &THelper{tb: tb, ctx: tb.Context()}
}

// WithContext replaces the context passed to Start, Stop and Reset.
func (h *THelper) WithContext(ctx context.Context) *THelper {
	h.ctx = ctx
	return h
}

// Setup starts every component through a Manager that is stopped when the
// test ends. A start failure fails the test immediately.
func (h *THelper) Setup(components ...TestComponent) *Manager {
	h.tb.Helper()
	m := NewManager(context.WithoutCancel(h.ctx), components...)
	if err := m.StartAll(); err != nil {
		h.tb.Fatalf("setup: %v", err)
	}
	h.tb.Cleanup(func() {
		if err := m.StopAll(); err != nil {
			h.tb.Errorf("cleanup: %v", err)
		}
	})
	return m
}

// Reset returns component to its initial state or fails the test.
func (h *THelper) Reset(component TestComponent) {
	h.tb.Helper()
	if err := component.Reset(h.ctx); err != nil {
		h.tb.Fatalf("reset component %s: %v", component.Name(), err)
	}
}
