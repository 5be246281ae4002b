package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/apistruct/resilience"
)

func newAdapter(t *testing.T, cfg Config) *Adapter {
	t.Helper()
	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a
}

func TestAdapter_Do_MergesQueryAndHeaders(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42}`))
	}))
	defer srv.Close()

	a := newAdapter(t, Config{
		Headers: map[string]string{"Accept": "application/json", "X-Team": "core"},
		Auth:    BearerAuth("tok"),
	})
	resp, err := a.Do(context.Background(), Request{
		Method:  http.MethodGet,
		URL:     srv.URL + "/users/42?fields=id",
		Headers: map[string]string{"X-Team": "platform"},
		Query:   url.Values{"include": {"posts", "comments"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"id":42}`, string(resp.Body))

	require.NotNil(t, got)
	assert.Equal(t, "/users/42", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "id", q.Get("fields"))
	assert.Equal(t, []string{"posts", "comments"}, q["include"])
	assert.Equal(t, "platform", got.Header.Get("X-Team"), "request header overrides default")
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
}

func TestAdapter_Do_EncodesJSONBody(t *testing.T) {
	var body map[string]any
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newAdapter(t, Config{})
	resp, err := a.Do(context.Background(), Request{
		Method: http.MethodPost,
		URL:    srv.URL + "/users",
		Body:   map[string]any{"name": "Ann"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, map[string]any{"name": "Ann"}, body)
}

func TestAdapter_Do_ErrorStatusKeepsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	a := newAdapter(t, Config{})
	resp, err := a.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	require.Error(t, err)
	require.NotNil(t, resp, "response is returned with the error")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"error":"not found"}`, string(resp.Body))
	assert.False(t, IsUnreachable(err), "404 is not a connectivity failure")
}

func TestAdapter_Do_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a := newAdapter(t, Config{Timeout: time.Second})
	resp, err := a.Do(context.Background(), Request{Method: http.MethodGet, URL: addr})
	assert.Nil(t, resp)
	assert.True(t, IsUnreachable(err), "got %v", err)
}

func TestAdapter_Do_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	a := newAdapter(t, Config{Timeout: 20 * time.Millisecond})
	_, err := a.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	assert.True(t, IsTimeout(err), "got %v", err)
}

func TestAdapter_Do_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newAdapter(t, Config{Retry: &resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}})
	resp, err := a.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, calls.Load())
}

func TestAdapter_Do_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newAdapter(t, Config{Retry: &resilience.RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond}})
	resp, err := a.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.EqualValues(t, 1, calls.Load())
}

func TestAdapter_CircuitBreakerOpens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newAdapter(t, Config{
		Name:           "users",
		CircuitBreaker: &resilience.CircuitBreakerConfig{MaxFailures: 2, Timeout: time.Minute},
	})
	ctx := context.Background()
	for range 2 {
		_, _ = a.Do(ctx, Request{Method: http.MethodGet, URL: srv.URL})
	}
	require.False(t, a.IsAvailable(ctx), "breaker should be open")

	resp, err := a.Do(ctx, Request{Method: http.MethodGet, URL: srv.URL})
	assert.Nil(t, resp)
	assert.True(t, IsConnection(err), "open breaker fails fast as a connection error, got %v", err)
}

func TestAdapter_ClientErrorsDoNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newAdapter(t, Config{CircuitBreaker: &resilience.CircuitBreakerConfig{MaxFailures: 1}})
	for range 3 {
		_, _ = a.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	}
	assert.True(t, a.IsAvailable(context.Background()), "4xx responses should not open the breaker")
}
