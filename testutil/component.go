package testutil

import (
	"context"
)

// TestComponent is a test dependency with a start/stop lifecycle and a way
// to return to its initial state between test cases.
type TestComponent interface {
	// Name identifies the component in error messages.
	Name() string
	// Start brings the component up.
	Start(ctx context.Context) error
	// Stop shuts the component down.
	Stop(ctx context.Context) error
	// Reset restores the component to its initial state.
	Reset(ctx context.Context) error
}
