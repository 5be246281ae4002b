package httpclient

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig holds TLS settings for the transport.
type TLSConfig struct {
	// SkipVerify disables server certificate verification.
	SkipVerify bool `yaml:"skip_verify" mapstructure:"skip_verify"`
	// CAFile is the PEM CA bundle used to verify the server.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file"`
	// CertFile and KeyFile are the client certificate pair for mTLS.
	CertFile string `yaml:"cert_file" mapstructure:"cert_file"`
	KeyFile  string `yaml:"key_file" mapstructure:"key_file"`
	// ServerName overrides the name used for certificate verification.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`
}

// Validate checks that the TLS configuration is consistent.
func (c *TLSConfig) Validate() error {
	if c == nil {
		return nil
	}
	if (c.CertFile != "") != (c.KeyFile != "") {
		return fmt.Errorf("httpclient/tls: both cert_file and key_file must be provided together")
	}
	return nil
}

// Build creates a *tls.Config, or nil when nothing is configured.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if c == nil || (!c.SkipVerify && c.CAFile == "" && c.CertFile == "" && c.ServerName == "") {
		return nil, nil
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.SkipVerify, //nolint:gosec // opt-in for development endpoints
		ServerName:         c.ServerName,
		MinVersion:         tls.VersionTLS12,
	}

	if c.CAFile != "" {
		ca, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("httpclient/tls: read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(ca) {
			return nil, fmt.Errorf("httpclient/tls: no certificates in %s", c.CAFile)
		}
		cfg.RootCAs = pool
	}

	if c.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("httpclient/tls: load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	return cfg, nil
}
