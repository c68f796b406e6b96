// Package observability provides structured logging and metrics for
// nodestyle.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//
// All features are opt-in. Logging helpers accept a nil logger and
// NoopMetrics stands in when metrics are disabled.
package observability

import (
	"log/slog"
)

// LogTypeColorAssigned logs a fresh type color assignment.
func LogTypeColorAssigned(logger *slog.Logger, typeID, hex string, attempts int) {
	if logger == nil {
		return
	}
	logger.Debug("type color assigned",
		slog.String("type_id", typeID),
		slog.String("color", hex),
		slog.Int("attempts", attempts),
	)
}

// LogBudgetExhausted logs an assignment that kept a colliding color
// because every seed was tried.
func LogBudgetExhausted(logger *slog.Logger, typeID, hex string, attempts, assigned int) {
	if logger == nil {
		return
	}
	logger.Warn("type color search exhausted, keeping colliding color",
		slog.String("type_id", typeID),
		slog.String("color", hex),
		slog.Int("attempts", attempts),
		slog.Int("assigned_types", assigned),
	)
}

// LogUndefinedValue logs a style key that was absent or null in a document.
func LogUndefinedValue(logger *slog.Logger, source, key string) {
	if logger == nil {
		return
	}
	logger.Debug("undefined value for parameter",
		slog.String("source", source),
		slog.String("parameter", key),
	)
}

// LogInvalidValue logs a style key whose value could not be used.
func LogInvalidValue(logger *slog.Logger, source, key string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("invalid value for parameter",
		slog.String("source", source),
		slog.String("parameter", key),
		slog.String("error", err.Error()),
	)
}

// LogStyleLoaded logs a successful overlay pass.
func LogStyleLoaded(logger *slog.Logger, source string, applied int) {
	if logger == nil {
		return
	}
	logger.Debug("style loaded",
		slog.String("source", source),
		slog.Int("applied", applied),
	)
}

// LogStyleLoadError logs a failed overlay pass.
func LogStyleLoadError(logger *slog.Logger, source string, err error) {
	if logger == nil {
		return
	}
	logger.Error("style load failed",
		slog.String("source", source),
		slog.String("error", err.Error()),
	)
}
