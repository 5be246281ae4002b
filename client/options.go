package client

import (
	"maps"

	"github.com/kbukum/apistruct/endpoint"
	"github.com/kbukum/apistruct/httpclient"
	"github.com/kbukum/apistruct/logger"
	"github.com/kbukum/apistruct/observability"
)

// Binding names the endpoint a client is bound to and its default path.
type Binding struct {
	// Endpoint is the registry name of the endpoint.
	Endpoint string
	// DefaultPath is appended after the root when a call sets no WithPath.
	// It is stringified; nil means no default path.
	DefaultPath any
}

// Bind creates a Binding for endpoint. The first defaultPath value, if any,
// becomes the binding's default path.
func Bind(endpoint string, defaultPath ...any) Binding {
	b := Binding{Endpoint: endpoint}
	if len(defaultPath) > 0 {
		b.DefaultPath = defaultPath[0]
	}
	return b
}

// options holds construction-time settings.
type options struct {
	registry   *endpoint.Registry
	transport  Transport
	httpConfig *httpclient.Config
	log        *logger.Logger
	metrics    *observability.RequestMetrics
}

// Option configures a Client at construction.
type Option func(*options)

// WithRegistry resolves the binding against r instead of the default registry.
func WithRegistry(r *endpoint.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithTransport replaces the default HTTP adapter.
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithHTTPConfig configures the default HTTP adapter. Its Headers are
// replaced by the endpoint's resolved headers.
func WithHTTPConfig(cfg httpclient.Config) Option {
	return func(o *options) { o.httpConfig = &cfg }
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records request metrics on m.
func WithMetrics(m *observability.RequestMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// request holds the per-call settings collected from RequestOptions.
type request struct {
	path    any
	pathSet bool
	prefix  any
	params  map[string]any
	values  map[string]any
	headers map[string]string
	body    any
}

// RequestOption configures a single verb call. RequestOptions may be mixed
// freely with path arguments.
type RequestOption func(*request)

// WithPath replaces the client's default path for this call.
func WithPath(path any) RequestOption {
	return func(r *request) {
		r.path = path
		r.pathSet = true
	}
}

// WithPrefix inserts a segment between the root and the path.
func WithPrefix(prefix any) RequestOption {
	return func(r *request) { r.prefix = prefix }
}

// WithParams adds query parameters. They win over the endpoint defaults.
func WithParams(params map[string]any) RequestOption {
	return func(r *request) {
		if r.params == nil {
			r.params = make(map[string]any, len(params))
		}
		maps.Copy(r.params, params)
	}
}

// WithParam adds one query parameter.
func WithParam(key string, value any) RequestOption {
	return WithParams(map[string]any{key: value})
}

// WithValues sets placeholder values used to fill /:name segments.
func WithValues(values map[string]any) RequestOption {
	return func(r *request) {
		if r.values == nil {
			r.values = make(map[string]any, len(values))
		}
		maps.Copy(r.values, values)
	}
}

// WithValue sets one placeholder value.
func WithValue(name string, value any) RequestOption {
	return WithValues(map[string]any{name: value})
}

// WithHeader adds a header for this call, over the endpoint headers.
func WithHeader(key, value string) RequestOption {
	return func(r *request) {
		if r.headers == nil {
			r.headers = make(map[string]string)
		}
		r.headers[key] = value
	}
}

// WithBody sets the request body. Values other than []byte, string and
// io.Reader are JSON-encoded.
func WithBody(body any) RequestOption {
	return func(r *request) { r.body = body }
}

// splitArgs separates RequestOptions from path arguments, keeping the order
// of the path arguments.
func splitArgs(args []any) (request, []any) {
	var req request
	var path []any
	for _, arg := range args {
		switch v := arg.(type) {
		case RequestOption:
			v(&req)
		case []RequestOption:
			for _, opt := range v {
				opt(&req)
			}
		default:
			path = append(path, arg)
		}
	}
	return req, path
}
