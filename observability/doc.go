// Package observability provides OpenTelemetry tracing and metrics for
// endpoint requests.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("billing"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("billing"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewRequestMetrics(observability.Meter("apistruct"))
//
// Per request, a RequestContext opens the span and records the metrics:
//
//	rc := observability.NewRequestContext("users", "GET", requestID, metrics)
//	ctx, span := rc.StartSpan(ctx)
//	defer rc.End(ctx, span, "ok", nil)
//
// Without InitTracer/InitMeter the global providers are no-ops.
package observability
