package httpclient

import (
	"fmt"
	"net/http"
)

// Auth types accepted in AuthConfig.Type.
const (
	AuthBearer = "bearer"
	AuthBasic  = "basic"
	AuthAPIKey = "api_key"
)

const defaultAPIKeyHeader = "X-API-Key"

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is one of "bearer", "basic" or "api_key". Empty disables auth.
	Type string `yaml:"type" mapstructure:"type"`
	// Token is the bearer token.
	Token string `yaml:"token" mapstructure:"token"`
	// Username and Password are the basic auth credentials.
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	// Key is the API key value.
	Key string `yaml:"key" mapstructure:"key"`
	// Header is the API key header name. Defaults to X-API-Key.
	Header string `yaml:"header" mapstructure:"header"`
	// Query sends the API key as this query parameter instead of a header.
	Query string `yaml:"query" mapstructure:"query"`
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// APIKeyAuth creates an API key auth config sent in the named header.
func APIKeyAuth(key, header string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, Header: header}
}

// Validate checks that the fields required by Type are present.
func (a *AuthConfig) Validate() error {
	if a == nil {
		return nil
	}
	switch a.Type {
	case "":
		return nil
	case AuthBearer:
		if a.Token == "" {
			return fmt.Errorf("httpclient: bearer auth requires a token")
		}
	case AuthBasic:
		if a.Username == "" {
			return fmt.Errorf("httpclient: basic auth requires a username")
		}
	case AuthAPIKey:
		if a.Key == "" {
			return fmt.Errorf("httpclient: api_key auth requires a key")
		}
	default:
		return fmt.Errorf("httpclient: unknown auth type %q", a.Type)
	}
	return nil
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthAPIKey:
		if a.Query != "" {
			q := req.URL.Query()
			q.Set(a.Query, a.Key)
			req.URL.RawQuery = q.Encode()
			return
		}
		header := a.Header
		if header == "" {
			header = defaultAPIKeyHeader
		}
		req.Header.Set(header, a.Key)
	}
}
