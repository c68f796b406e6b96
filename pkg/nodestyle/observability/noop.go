package observability

import "context"

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordAssignment does nothing.
func (NoopMetrics) RecordAssignment(_ context.Context, _ int, _ bool) {}

// RecordCacheHit does nothing.
func (NoopMetrics) RecordCacheHit(_ context.Context) {}

// RecordStyleLoad does nothing.
func (NoopMetrics) RecordStyleLoad(_ context.Context, _ string, _ error) {}
