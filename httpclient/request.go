package httpclient

import (
	"net/url"
)

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string
	// URL is the fully resolved request URL. It may already carry a query string.
	URL string
	// Headers are request-specific headers, applied over the adapter defaults.
	Headers map[string]string
	// Query is merged into the URL's query string.
	Query url.Values
	// Body is the request body. Accepts io.Reader, []byte, string, or any value
	// that will be JSON-encoded.
	Body any
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, first value per key.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is below 300.
func (r *Response) IsSuccess() bool {
	return r.StatusCode < 300
}
