package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// operationDurationBuckets are the histogram boundaries, in seconds, for
// business operation durations. Envelope operations are dominated by AEAD
// work and a storage round trip, so the buckets are skewed toward the
// sub-millisecond to low-millisecond range the defaults would lump together.
var operationDurationBuckets = []float64{
	0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
}

// BusinessMetrics records business operation outcomes for observability.
//
// The use case layer reports every operation with a domain ("envelope"), an
// operation ("record_encrypt", "record_get", "record_list",
// "record_decrypt", "record_decrypt_direct"), and a status ("success" or
// "error").
type BusinessMetrics interface {
	// RecordOperation counts one completed operation with its status.
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records how long an operation took, in seconds, as a
	// histogram suitable for percentile queries.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

// businessMetrics implements BusinessMetrics on OpenTelemetry instruments.
type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewBusinessMetrics builds the operation counter and duration histogram
// under the given namespace prefix. Returns an error if either instrument
// cannot be created.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Completed operations by domain, operation and status"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Operation latency in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(operationDurationBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

// operationAttrs is the shared attribute set of both instruments. Keeping
// counter and histogram labels identical lets dashboards join them.
func operationAttrs(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, operationAttrs(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(), operationAttrs(domain, operation, status))
}

// NoOpBusinessMetrics discards all recordings. The container hands it out
// when metrics are disabled so callers never need a nil check.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics returns a recorder that discards everything, used
// when metrics are disabled.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing.
func (n *NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

// RecordDuration does nothing.
func (n *NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {
}
