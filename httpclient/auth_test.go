package httpclient

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	return req
}

func TestBearerAuth(t *testing.T) {
	req := newRequest(t, "http://example.com")
	BearerAuth("my-token").apply(req)
	assert.Equal(t, "Bearer my-token", req.Header.Get("Authorization"))
}

func TestBasicAuth(t *testing.T) {
	req := newRequest(t, "http://example.com")
	BasicAuth("user", "pass").apply(req)
	u, p, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "user", u)
	assert.Equal(t, "pass", p)
}

func TestAPIKeyAuth_DefaultHeader(t *testing.T) {
	req := newRequest(t, "http://example.com")
	APIKeyAuth("secret-key", "").apply(req)
	assert.Equal(t, "secret-key", req.Header.Get("X-API-Key"))
}

func TestAPIKeyAuth_Query(t *testing.T) {
	auth := &AuthConfig{Type: AuthAPIKey, Key: "secret-key", Query: "api_key"}
	req := newRequest(t, "http://example.com/path?page=2")
	auth.apply(req)
	assert.Equal(t, "secret-key", req.URL.Query().Get("api_key"))
	assert.Equal(t, "2", req.URL.Query().Get("page"), "existing query kept")
}

func TestNilAuth(t *testing.T) {
	var auth *AuthConfig
	req := newRequest(t, "http://example.com")
	auth.apply(req)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestAuthConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		auth    *AuthConfig
		wantErr bool
	}{
		{"nil", nil, false},
		{"empty type", &AuthConfig{}, false},
		{"bearer ok", BearerAuth("t"), false},
		{"bearer missing token", &AuthConfig{Type: AuthBearer}, true},
		{"basic missing user", &AuthConfig{Type: AuthBasic}, true},
		{"api key missing key", &AuthConfig{Type: AuthAPIKey}, true},
		{"unknown", &AuthConfig{Type: "oauth"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.auth.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
