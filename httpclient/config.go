package httpclient

import (
	"fmt"
	"time"

	"github.com/kbukum/apistruct/resilience"
)

const (
	defaultTimeout = 30 * time.Second
)

// Config configures the HTTP adapter.
type Config struct {
	// Name identifies the adapter in errors and circuit breaker callbacks.
	Name string `yaml:"name" mapstructure:"name"`

	// Timeout is the per-attempt request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are fixed headers applied to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth configures authentication applied to every request.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Retry configures retry behavior. Nil disables retry.
	Retry *resilience.RetryConfig `yaml:"retry" mapstructure:"retry"`

	// CircuitBreaker configures circuit breaker behavior. Nil disables it.
	CircuitBreaker *resilience.CircuitBreakerConfig `yaml:"circuit_breaker" mapstructure:"circuit_breaker"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Retry != nil && c.Retry.RetryIf == nil {
		c.Retry.RetryIf = IsRetryable
	}
	if c.CircuitBreaker != nil && c.CircuitBreaker.Name == "" {
		c.CircuitBreaker.Name = c.Name
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return c.TLS.Validate()
}
