package testutil

import (
	"testing"

	"github.com/kbukum/apistruct/endpoint"
)

// StubEndpoint configures a registry holding the single endpoint
// endpoint.StubName with root and params, installs it as the default
// registry for the duration of the test and returns it.
func StubEndpoint(t testing.TB, root string, params map[string]any) *endpoint.Registry {
	t.Helper()
	r := endpoint.NewRegistry()
	if err := r.Stub(root, params); err != nil {
		t.Fatalf("stub endpoint %q: %v", root, err)
	}
	prev := endpoint.Default()
	endpoint.SetDefault(r)
	t.Cleanup(func() { endpoint.SetDefault(prev) })
	return r
}
