package endpoint

import (
	"sort"

	"github.com/kbukum/apistruct/errors"
	"github.com/kbukum/apistruct/validation"
)

// StubName is the endpoint name configured by Registry.Stub.
const StubName = "stub_api"

// Registry maps endpoint names to their configuration.
type Registry struct {
	endpoints map[string]Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{endpoints: make(map[string]Config)}
}

// Configure replaces the registry contents with endpoints. Entries are
// validated first; on error the registry is left unchanged.
func (r *Registry) Configure(endpoints map[string]Config) error {
	v := validation.New()
	next := make(map[string]Config, len(endpoints))
	for name, cfg := range endpoints {
		if name == "" {
			v.AddError("endpoints", "name must not be empty")
			continue
		}
		v.Merge("endpoints."+name, validation.Validate(cfg))
		cfg = cfg.clone()
		cfg.Name = name
		next[name] = cfg
	}
	if err := v.Error(); err != nil {
		return errors.Configuration("invalid endpoint configuration").WithCause(err)
	}
	r.endpoints = next
	return nil
}

// Stub replaces the registry with a single endpoint named StubName.
func (r *Registry) Stub(root string, params map[string]any) error {
	return r.Configure(map[string]Config{StubName: {Root: root, Params: params}})
}

// Lookup returns the configuration registered under name.
func (r *Registry) Lookup(name string) (Config, error) {
	cfg, ok := r.endpoints[name]
	if !ok {
		return Config{}, errors.UnknownEndpoint(name)
	}
	return cfg.clone(), nil
}

// Names returns the configured endpoint names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.endpoints))
	for name := range r.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- package default ---

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// SetDefault swaps the process-wide registry. Intended for tests.
func SetDefault(r *Registry) { defaultRegistry = r }

// Configure replaces the contents of the process-wide registry.
func Configure(endpoints map[string]Config) error {
	return defaultRegistry.Configure(endpoints)
}

// Lookup reads from the process-wide registry.
func Lookup(name string) (Config, error) {
	return defaultRegistry.Lookup(name)
}
