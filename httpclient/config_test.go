package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/apistruct/resilience"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	cfg := Config{Timeout: 10 * time.Second}
	cfg.ApplyDefaults()
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestConfig_ApplyDefaults_Resilience(t *testing.T) {
	cfg := Config{
		Name:           "users",
		Retry:          &resilience.RetryConfig{MaxAttempts: 2},
		CircuitBreaker: &resilience.CircuitBreakerConfig{},
	}
	cfg.ApplyDefaults()
	assert.NotNil(t, cfg.Retry.RetryIf)
	assert.Equal(t, "users", cfg.CircuitBreaker.Name)
}

func TestConfig_Validate_InvalidTimeout(t *testing.T) {
	cfg := Config{Timeout: -1}
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_InvalidTLS(t *testing.T) {
	cfg := Config{
		Timeout: 10 * time.Second,
		TLS:     &TLSConfig{CertFile: "cert.pem"},
	}
	assert.Error(t, cfg.Validate(), "cert without key")
}

func TestTLSConfig_BuildNilWhenEmpty(t *testing.T) {
	cfg, err := (&TLSConfig{}).Build()
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestTLSConfig_BuildMissingCA(t *testing.T) {
	_, err := (&TLSConfig{CAFile: "does-not-exist.pem"}).Build()
	assert.Error(t, err)
}
