package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Manager starts, resets and stops several test components together.
// Components start in the order they were added and stop in reverse.
type Manager struct {
	ctx        context.Context
	mu         sync.RWMutex
	components []TestComponent
	started    int
}

// NewManager creates a manager for components.
func NewManager(ctx context.Context, components ...TestComponent) *Manager {
	return &Manager{ctx: ctx, components: components}
}

// Add registers a test component with the manager.
func (m *Manager) Add(component TestComponent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component)
}

// Get returns the component named name, or nil.
func (m *Manager) Get(name string) TestComponent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, comp := range m.components {
		if comp.Name() == name {
			return comp
		}
	}
	return nil
}

// StartAll starts every component. When one fails, the components already
// started are stopped again and the start error is returned.
func (m *Manager) StartAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, comp := range m.components[m.started:] {
		if err := comp.Start(m.ctx); err != nil {
			m.started += i
			startErr := fmt.Errorf("failed to start component %s: %w", comp.Name(), err)
			return errors.Join(startErr, m.stopStarted())
		}
	}
	m.started = len(m.components)
	return nil
}

// StopAll stops every started component in reverse order, collecting errors.
func (m *Manager) StopAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopStarted()
}

func (m *Manager) stopStarted() error {
	var errs []error
	for i := m.started - 1; i >= 0; i-- {
		comp := m.components[i]
		if err := comp.Stop(m.ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop component %s: %w", comp.Name(), err))
		}
	}
	m.started = 0
	return errors.Join(errs...)
}

// ResetAll resets every component, stopping at the first failure.
func (m *Manager) ResetAll() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, comp := range m.components {
		if err := comp.Reset(m.ctx); err != nil {
			return fmt.Errorf("failed to reset component %s: %w", comp.Name(), err)
		}
	}
	return nil
}

// Cleanup is an alias for StopAll for use with defer or t.Cleanup.
func (m *Manager) Cleanup() error {
	return m.StopAll()
}
