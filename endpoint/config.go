package endpoint

import "maps"

// Config describes one endpoint.
type Config struct {
	// Name is the symbolic endpoint name. Filled from the registry key.
	Name string `yaml:"-" mapstructure:"-"`
	// Root is the URL template. Segments of the form /:name are placeholders.
	Root string `yaml:"root" mapstructure:"root" validate:"required,root_template"`
	// Params are default query parameters merged under request parameters.
	Params map[string]any `yaml:"params" mapstructure:"params"`
	// Headers replace the default JSON headers when set.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// clone returns a deep-enough copy so callers cannot mutate registry state.
func (c Config) clone() Config {
	c.Params = maps.Clone(c.Params)
	c.Headers = maps.Clone(c.Headers)
	return c
}
