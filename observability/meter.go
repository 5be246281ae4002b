package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/apistruct/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the calling service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the calling service.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it globally.
// The returned provider should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// RequestMetrics holds the instruments recorded for every endpoint request.
type RequestMetrics struct {
	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestActive   metric.Int64UpDownCounter
	errorTotal      metric.Int64Counter
}

// NewRequestMetrics creates request instruments on the given meter.
func NewRequestMetrics(meter metric.Meter) (*RequestMetrics, error) {
	requestTotal, err := meter.Int64Counter("apistruct.request.total",
		metric.WithDescription("Total number of endpoint requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating apistruct.request.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("apistruct.request.duration",
		metric.WithDescription("Duration of endpoint requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating apistruct.request.duration histogram: %w", err)
	}

	requestActive, err := meter.Int64UpDownCounter("apistruct.request.active",
		metric.WithDescription("Number of in-flight endpoint requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating apistruct.request.active gauge: %w", err)
	}

	errorTotal, err := meter.Int64Counter("apistruct.request.errors",
		metric.WithDescription("Failed endpoint requests by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating apistruct.request.errors counter: %w", err)
	}

	return &RequestMetrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestActive:   requestActive,
		errorTotal:      errorTotal,
	}, nil
}

// RecordStart increments the in-flight request count.
func (m *RequestMetrics) RecordStart(ctx context.Context) {
	m.requestActive.Add(ctx, 1)
}

// RecordEnd decrements in-flight requests and records the completed request.
func (m *RequestMetrics) RecordEnd(ctx context.Context, endpoint, method, status string, duration time.Duration) {
	m.requestActive.Add(ctx, -1)
	m.requestTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("method", method),
		attribute.String("status", status),
	))
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("method", method),
	))
}

// RecordError counts a failed request by endpoint and failure status.
func (m *RequestMetrics) RecordError(ctx context.Context, endpoint, status string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("status", status),
	))
}
