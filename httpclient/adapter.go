package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kbukum/apistruct/resilience"
)

// Adapter is a configurable HTTP adapter with built-in auth, TLS, and resilience.
type Adapter struct {
	httpClient *http.Client
	config     Config
	cb         *resilience.CircuitBreaker
}

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		transport.TLSClientConfig = tlsCfg
	}

	a := &Adapter{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
	}
	if cfg.CircuitBreaker != nil {
		a.cb = resilience.NewCircuitBreaker(*cfg.CircuitBreaker)
	}
	return a, nil
}

// Do executes an HTTP request and returns the complete response.
// A response with status >= 300 is returned together with its classified *Error.
func (a *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	if a.config.Retry != nil {
		return resilience.Retry(ctx, *a.config.Retry, func() (*Response, error) {
			return a.doOnce(ctx, req)
		})
	}
	return a.doOnce(ctx, req)
}

// doOnce executes a single HTTP request through the circuit breaker.
// Only retryable failures count against the breaker.
func (a *Adapter) doOnce(ctx context.Context, req Request) (*Response, error) {
	if a.cb == nil {
		return a.executeRequest(ctx, req)
	}

	var (
		resp    *Response
		callErr error
	)
	err := a.cb.Execute(func() error {
		resp, callErr = a.executeRequest(ctx, req)
		if IsRetryable(callErr) {
			return callErr
		}
		return nil
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return nil, NewConnectionError(err)
	}
	return resp, callErr
}

// executeRequest builds and sends the HTTP request.
func (a *Adapter) executeRequest(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := a.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil || isTimeout(err) {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode); classErr != nil {
		return result, classErr
	}
	return result, nil
}

// buildRequest constructs an *http.Request from the adapter config and request.
func (a *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewRequestError(fmt.Errorf("encode body: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, NewRequestError(fmt.Errorf("create request: %w", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, vs := range req.Query {
			q[k] = append([]string(nil), vs...)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	a.config.Auth.apply(httpReq)
	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return a.config.Name
}

// IsAvailable reports whether the circuit breaker, if any, admits requests.
func (a *Adapter) IsAvailable(_ context.Context) bool {
	if a.cb != nil {
		return a.cb.State() != resilience.StateOpen
	}
	return true
}

// Close releases idle connections held by the adapter.
func (a *Adapter) Close(_ context.Context) error {
	a.httpClient.CloseIdleConnections()
	return nil
}
