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

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name reported for the instrumented application.
	ServiceName string
	// ServiceVersion is the version of the application.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.Current().String(),
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
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

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.NewDefault("observability").Info("meter initialized", logger.Fields(
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

// Metrics holds OpenTelemetry metric instruments for sequence traversals.
type Metrics struct {
	traversalTotal    metric.Int64Counter
	traversalDuration metric.Float64Histogram
	elementTotal      metric.Int64Counter
	errorTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	traversalTotal, err := meter.Int64Counter("sequence.traversal.total",
		metric.WithDescription("Total number of completed sequence traversals"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.traversal.total counter: %w", err)
	}

	traversalDuration, err := meter.Float64Histogram("sequence.traversal.duration",
		metric.WithDescription("Duration of sequence traversals in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.traversal.duration histogram: %w", err)
	}

	elementTotal, err := meter.Int64Counter("sequence.element.total",
		metric.WithDescription("Total number of elements produced by traversals"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.element.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("sequence.error.total",
		metric.WithDescription("Total traversal errors by stage and code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.error.total counter: %w", err)
	}

	return &Metrics{
		traversalTotal:    traversalTotal,
		traversalDuration: traversalDuration,
		elementTotal:      elementTotal,
		errorTotal:        errorTotal,
	}, nil
}

// RecordTraversal records a completed traversal of a sequence stage.
func (m *Metrics) RecordTraversal(ctx context.Context, stage, status string, elements int64, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("status", status),
	)
	m.traversalTotal.Add(ctx, 1, attrs)
	m.elementTotal.Add(ctx, elements, metric.WithAttributes(attribute.String("stage", stage)))
	m.traversalDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordError records a traversal error by stage and error code.
func (m *Metrics) RecordError(ctx context.Context, stage, code string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("code", code),
	))
}
