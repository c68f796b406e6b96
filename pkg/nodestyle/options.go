package nodestyle

import (
	"log/slog"

	"github.com/randalmurphal/nodestyle/pkg/nodestyle/observability"
	"github.com/randalmurphal/nodestyle/pkg/nodestyle/palette"
)

// Option configures a ConnectionStyle.
type Option func(*ConnectionStyle)

// WithLogger sets the logger for load diagnostics and type color assignments.
// Default: nil (no logging).
//
// Absent or null style keys are reported at DEBUG, unusable values and
// exhausted color searches at WARN.
func WithLogger(logger *slog.Logger) Option {
	return func(s *ConnectionStyle) {
		s.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics.
// Default: false
//
// Uses the global meter provider; see observability.NewMetricsRecorder.
func WithMetrics(enabled bool) Option {
	return func(s *ConnectionStyle) {
		if enabled {
			s.metrics = observability.NewMetricsRecorder()
		} else {
			s.metrics = observability.NoopMetrics{}
		}
	}
}

// WithPaletteOptions tunes the type color search.
//
// Example:
//
//	style := nodestyle.New(nodestyle.WithPaletteOptions(palette.WithMaxSeed(100)))
//
// An observer passed here is replaced by the style's own.
func WithPaletteOptions(opts ...palette.Option) Option {
	return func(s *ConnectionStyle) {
		s.paletteOpts = append(s.paletteOpts, opts...)
	}
}
