package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/apistruct/httpclient"
	"github.com/kbukum/apistruct/logger"
	"github.com/kbukum/apistruct/observability"
	"github.com/kbukum/apistruct/result"
)

var errNoResponse = errors.New("transport returned neither a response nor an error")

// send dispatches req on the transport inside a request span and converts
// the outcome into a result.
func (c *Client) send(ctx context.Context, req httpclient.Request) result.Result[any] {
	requestID := uuid.NewString()
	rc := observability.NewRequestContext(c.endpoint.Name, req.Method, requestID, c.metrics)
	ctx, span := rc.StartSpan(ctx)
	span.SetAttributes(attribute.String(observability.AttrURL, req.URL))

	resp, err := c.transport.Do(ctx, req)

	var res result.Result[any]
	switch {
	case resp != nil:
		span.SetAttributes(attribute.Int(observability.AttrStatusCode, resp.StatusCode))
		res = Wrap(resp)
	case err != nil:
		res = WrapError(err)
	default:
		res = WrapError(httpclient.NewRequestError(errNoResponse))
	}

	status := "ok"
	var failure error
	if f := res.Err(); f != nil {
		status = f.Status
		failure = f
	}
	rc.End(ctx, span, status, failure)

	fields := logger.RequestFields(c.endpoint.Name, req.Method, req.URL, requestID)
	fields[logger.FieldStatus] = status
	fields = logger.MergeWithDuration(fields, rc.Duration())
	if failure != nil {
		c.log.Warn("request failed", logger.MergeWithError(fields, failure))
	} else {
		c.log.Debug("request completed", fields)
	}
	return res
}
