package client

import (
	"context"

	"github.com/kbukum/apistruct/httpclient"
)

// Transport sends one request and returns the raw response.
//
// Implementations return a non-nil response together with an error for
// statuses of 300 and above, and a nil response with an *httpclient.Error
// for failures that never produced a response. *httpclient.Adapter is the
// default implementation.
type Transport interface {
	Do(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)

// Do calls f(ctx, req).
func (f TransportFunc) Do(ctx context.Context, req httpclient.Request) (*httpclient.Response, error) {
	return f(ctx, req)
}

// closer is implemented by transports that hold resources.
type closer interface {
	Close(ctx context.Context) error
}

var _ Transport = (*httpclient.Adapter)(nil)
