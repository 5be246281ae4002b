package client

import (
	"context"
	"maps"
	"net/http"
	"net/url"

	"github.com/kbukum/apistruct/endpoint"
	"github.com/kbukum/apistruct/errors"
	"github.com/kbukum/apistruct/httpclient"
	"github.com/kbukum/apistruct/logger"
	"github.com/kbukum/apistruct/observability"
	"github.com/kbukum/apistruct/result"
)

// DefaultHeaders are sent when the endpoint declares no headers.
var DefaultHeaders = map[string]string{
	"Accept":       "application/json",
	"Content-Type": "application/json",
}

// Client dispatches HTTP verbs against one configured endpoint.
type Client struct {
	endpoint    endpoint.Config
	defaultPath string
	headers     map[string]string
	transport   Transport
	log         *logger.Logger
	metrics     *observability.RequestMetrics
}

// New binds a client to b.Endpoint. The endpoint is resolved once, here;
// a missing binding or an unregistered endpoint is a configuration error.
func New(b Binding, opts ...Option) (*Client, error) {
	if b.Endpoint == "" {
		return nil, errors.MissingEndpoint("")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = endpoint.Default()
	}
	if o.log == nil {
		o.log = logger.Get("apistruct.client")
	}

	cfg, err := o.registry.Lookup(b.Endpoint)
	if err != nil {
		return nil, err
	}

	headers := maps.Clone(cfg.Headers)
	if len(headers) == 0 {
		headers = maps.Clone(DefaultHeaders)
	}

	c := &Client{
		endpoint:    cfg,
		defaultPath: JoinPath(b.DefaultPath),
		headers:     headers,
		transport:   o.transport,
		log:         o.log.WithFields(logger.Fields(logger.FieldEndpoint, cfg.Name)),
		metrics:     o.metrics,
	}

	if c.transport == nil {
		httpCfg := httpclient.Config{}
		if o.httpConfig != nil {
			httpCfg = *o.httpConfig
		}
		if httpCfg.Name == "" {
			httpCfg.Name = cfg.Name
		}
		httpCfg.Headers = maps.Clone(headers)
		adapter, err := httpclient.New(httpCfg)
		if err != nil {
			return nil, errors.Configuration("invalid http configuration for endpoint %q", cfg.Name).WithCause(err)
		}
		c.transport = adapter
	}

	return c, nil
}

// Endpoint returns a copy of the bound endpoint configuration.
func (c *Client) Endpoint() endpoint.Config {
	return endpoint.Config{
		Name:    c.endpoint.Name,
		Root:    c.endpoint.Root,
		Params:  maps.Clone(c.endpoint.Params),
		Headers: maps.Clone(c.endpoint.Headers),
	}
}

// DefaultPath returns the stringified default path, or "".
func (c *Client) DefaultPath() string {
	return c.defaultPath
}

// Headers returns a copy of the headers sent with every request.
func (c *Client) Headers() map[string]string {
	return maps.Clone(c.headers)
}

// Get sends a GET request. See the package documentation for args.
func (c *Client) Get(ctx context.Context, args ...any) result.Result[any] {
	return c.Do(ctx, http.MethodGet, args...)
}

// Post sends a POST request.
func (c *Client) Post(ctx context.Context, args ...any) result.Result[any] {
	return c.Do(ctx, http.MethodPost, args...)
}

// Patch sends a PATCH request.
func (c *Client) Patch(ctx context.Context, args ...any) result.Result[any] {
	return c.Do(ctx, http.MethodPatch, args...)
}

// Put sends a PUT request.
func (c *Client) Put(ctx context.Context, args ...any) result.Result[any] {
	return c.Do(ctx, http.MethodPut, args...)
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, args ...any) result.Result[any] {
	return c.Do(ctx, http.MethodDelete, args...)
}

// URL returns the URL a verb call with args would target, without sending anything.
func (c *Client) URL(args ...any) string {
	req, path := splitArgs(args)
	return c.buildURL(req, path)
}

// Do sends a request with an arbitrary method.
func (c *Client) Do(ctx context.Context, method string, args ...any) result.Result[any] {
	req, path := splitArgs(args)
	target := c.buildURL(req, path)

	out := httpclient.Request{
		Method:  method,
		URL:     target,
		Headers: c.requestHeaders(req.headers),
		Query:   c.query(req.params),
		Body:    req.body,
	}
	return c.send(ctx, out)
}

// Close releases resources held by the transport.
func (c *Client) Close(ctx context.Context) error {
	if cl, ok := c.transport.(closer); ok {
		return cl.Close(ctx)
	}
	return nil
}

func (c *Client) buildURL(req request, args []any) string {
	var path any = c.defaultPath
	if req.pathSet {
		path = req.path
	}
	return BuildURL(c.endpoint.Root, req.prefix, path, args, req.values)
}

func (c *Client) requestHeaders(extra map[string]string) map[string]string {
	h := maps.Clone(c.headers)
	maps.Copy(h, extra)
	return h
}

// query merges the endpoint default params with the call params; call params win.
func (c *Client) query(params map[string]any) url.Values {
	merged := maps.Clone(c.endpoint.Params)
	if merged == nil {
		merged = make(map[string]any, len(params))
	}
	maps.Copy(merged, params)

	q := make(url.Values, len(merged))
	for k, v := range merged {
		for _, s := range queryValues(v) {
			q.Add(k, s)
		}
	}
	return q
}

// queryValues renders one param value; slices become repeated keys and nil
// values are omitted.
func queryValues(v any) []string {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if item != nil {
				out = append(out, stringify(item))
			}
		}
		return out
	}
	return []string{stringify(v)}
}
