package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records nodestyle metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordAssignment records a fresh type color assignment.
	RecordAssignment(ctx context.Context, attempts int, exhausted bool)

	// RecordCacheHit records a type color served from the registry.
	RecordCacheHit(ctx context.Context)

	// RecordStyleLoad records an overlay pass over a style document.
	RecordStyleLoad(ctx context.Context, source string, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	assignments metric.Int64Counter
	attempts    metric.Int64Histogram
	exhausted   metric.Int64Counter
	cacheHits   metric.Int64Counter
	styleLoads  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("nodestyle")

	assignments, err := meter.Int64Counter("nodestyle.palette.assignments",
		metric.WithDescription("Number of fresh type color assignments"),
	)
	if err != nil {
		return nil, err
	}

	attempts, err := meter.Int64Histogram("nodestyle.palette.attempts",
		metric.WithDescription("Candidates evaluated per type color assignment"),
	)
	if err != nil {
		return nil, err
	}

	exhausted, err := meter.Int64Counter("nodestyle.palette.exhausted",
		metric.WithDescription("Assignments that kept a colliding color after trying every seed"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter("nodestyle.palette.cache_hits",
		metric.WithDescription("Type colors served from the registry"),
	)
	if err != nil {
		return nil, err
	}

	styleLoads, err := meter.Int64Counter("nodestyle.style.loads",
		metric.WithDescription("Style document overlay passes"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		assignments: assignments,
		attempts:    attempts,
		exhausted:   exhausted,
		cacheHits:   cacheHits,
		styleLoads:  styleLoads,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordAssignment records a fresh assignment.
func (m *otelMetrics) RecordAssignment(ctx context.Context, attempts int, exhausted bool) {
	attrs := metric.WithAttributes(attribute.Bool("exhausted", exhausted))

	m.assignments.Add(ctx, 1, attrs)
	m.attempts.Record(ctx, int64(attempts), attrs)
	if exhausted {
		m.exhausted.Add(ctx, 1)
	}
}

// RecordCacheHit records a cache hit.
func (m *otelMetrics) RecordCacheHit(ctx context.Context) {
	m.cacheHits.Add(ctx, 1)
}

// RecordStyleLoad records an overlay pass.
func (m *otelMetrics) RecordStyleLoad(ctx context.Context, source string, err error) {
	m.styleLoads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.Bool("success", err == nil),
	))
}
