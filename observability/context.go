package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RequestContext tracks one endpoint request from span start to completion.
type RequestContext struct {
	Endpoint  string
	Method    string
	RequestID string
	StartTime time.Time
	Metrics   *RequestMetrics
}

// NewRequestContext creates a request context.
// If metrics is nil, metric recording is silently skipped.
func NewRequestContext(endpoint, method, requestID string, metrics *RequestMetrics) *RequestContext {
	return &RequestContext{
		Endpoint:  endpoint,
		Method:    method,
		RequestID: requestID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type requestContextKey struct{}

// WithRequestContext stores a RequestContext in the context.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// RequestContextFromContext retrieves the RequestContext from context, or nil.
func RequestContextFromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return rc
	}
	return nil
}

// StartSpan starts the request span, records the start metric and stores rc
// in the returned context.
func (rc *RequestContext) StartSpan(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanRequest, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String(AttrEndpoint, rc.Endpoint),
		attribute.String(AttrMethod, rc.Method),
		attribute.String(AttrRequestID, rc.RequestID),
	)
	if rc.Metrics != nil {
		rc.Metrics.RecordStart(ctx)
	}
	return WithRequestContext(ctx, rc), span
}

// End records the outcome on span and in metrics, then ends the span.
// status is "ok" for success or the failure status otherwise.
func (rc *RequestContext) End(ctx context.Context, span trace.Span, status string, err error) {
	span.SetAttributes(attribute.String(AttrStatus, status))
	SetSpanError(span, err)
	if rc.Metrics != nil {
		rc.Metrics.RecordEnd(ctx, rc.Endpoint, rc.Method, status, rc.Duration())
		if err != nil {
			rc.Metrics.RecordError(ctx, rc.Endpoint, status)
		}
	}
	span.End()
}

// Duration returns the elapsed time since the request started.
func (rc *RequestContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
