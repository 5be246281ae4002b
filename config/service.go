package config

import (
	"cmp"
	"slices"
	"time"

	"github.com/kbukum/apistruct/endpoint"
	"github.com/kbukum/apistruct/httpclient"
	"github.com/kbukum/apistruct/logger"
	"github.com/kbukum/apistruct/observability"
	"github.com/kbukum/apistruct/validation"
)

var environments = []string{"development", "staging", "production"}

// Config is the root configuration of an apistruct-based client application.
//
// Applications with their own settings embed it:
//
//	type BillingConfig struct {
//	    config.Config `yaml:",inline" mapstructure:",squash"`
//	    Currency string `yaml:"currency" mapstructure:"currency"`
//	}
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`

	// HTTP configures the transport shared by every endpoint client.
	HTTP httpclient.Config `yaml:"http" mapstructure:"http"`

	// Endpoints maps endpoint names to their root template, default params and headers.
	Endpoints map[string]endpoint.Config `yaml:"endpoints" mapstructure:"endpoints"`

	// Tracing and Metrics enable OTLP export when set.
	Tracing *observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics *observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// GetConfig returns the base Config. When embedded, the method is promoted so
// the embedding struct exposes its apistruct settings.
func (c *Config) GetConfig() *Config {
	return c
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()

	if c.HTTP.Name == "" {
		c.HTTP.Name = c.Name
	}
	c.HTTP.ApplyDefaults()

	if c.Tracing != nil {
		c.Tracing.ServiceName = cmp.Or(c.Tracing.ServiceName, c.Name)
		c.Tracing.ServiceVersion = cmp.Or(c.Tracing.ServiceVersion, c.Version)
		c.Tracing.Environment = cmp.Or(c.Tracing.Environment, c.Environment)
	}
	if c.Metrics != nil {
		c.Metrics.ServiceName = cmp.Or(c.Metrics.ServiceName, c.Name)
		c.Metrics.ServiceVersion = cmp.Or(c.Metrics.ServiceVersion, c.Version)
		c.Metrics.Environment = cmp.Or(c.Metrics.Environment, c.Environment)
		if c.Metrics.Interval <= 0 {
			c.Metrics.Interval = 15 * time.Second
		}
	}
}

// Validate validates the configuration. Endpoint entries are validated as a
// group; all problems are reported in a single validation error.
func (c *Config) Validate() error {
	v := validation.New()
	if c.Name == "" {
		v.AddError("name", "is required")
	}
	if !slices.Contains(environments, c.Environment) {
		v.AddError("environment", "must be one of: development staging production")
	}
	v.Merge("logging", c.Logging.Validate())
	v.Merge("http", c.HTTP.Validate())
	for name, ep := range c.Endpoints {
		v.Merge("endpoints."+name, validation.Validate(ep))
	}
	return v.Error()
}

// Registry builds an endpoint registry from the configured endpoints.
func (c *Config) Registry() (*endpoint.Registry, error) {
	r := endpoint.NewRegistry()
	if err := r.Configure(c.Endpoints); err != nil {
		return nil, err
	}
	return r, nil
}
