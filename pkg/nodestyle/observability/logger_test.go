package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records as JSON lines.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{buf: h.buf, level: h.level}
	newH.attrs = append(append(newH.attrs, h.attrs...), attrs...)
	return newH
}

func (h *testHandler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *testHandler) lastRecord() map[string]any {
	lines := bytes.Split(h.buf.Bytes(), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(lines[i], &m); err == nil {
			return m
		}
	}
	return nil
}

func TestLogTypeColorAssigned(t *testing.T) {
	t.Run("logs at DEBUG level", func(t *testing.T) {
		h := newTestHandler()

		LogTypeColorAssigned(slog.New(h), "Number", "#aabbcc", 3)

		record := h.lastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "DEBUG", record["level"])
		assert.Equal(t, "type color assigned", record["msg"])
		assert.Equal(t, "Number", record["type_id"])
		assert.Equal(t, "#aabbcc", record["color"])
		assert.Equal(t, float64(3), record["attempts"]) // JSON decodes ints as float64
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogTypeColorAssigned(nil, "Number", "#aabbcc", 1)
		})
	})
}

func TestLogBudgetExhausted(t *testing.T) {
	h := newTestHandler()

	LogBudgetExhausted(slog.New(h), "Text", "#010203", 51, 300)

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "Text", record["type_id"])
	assert.Equal(t, float64(51), record["attempts"])
	assert.Equal(t, float64(300), record["assigned_types"])

	assert.NotPanics(t, func() {
		LogBudgetExhausted(nil, "Text", "#010203", 51, 300)
	})
}

func TestLogUndefinedValue(t *testing.T) {
	h := newTestHandler()

	LogUndefinedValue(slog.New(h), "json", "HoveredColor")

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "undefined value for parameter", record["msg"])
	assert.Equal(t, "json", record["source"])
	assert.Equal(t, "HoveredColor", record["parameter"])
}

func TestLogInvalidValue(t *testing.T) {
	h := newTestHandler()

	LogInvalidValue(slog.New(h), "yaml", "NormalColor", errors.New("invalid color"))

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "NormalColor", record["parameter"])
	assert.Equal(t, "invalid color", record["error"])

	assert.NotPanics(t, func() {
		LogInvalidValue(nil, "yaml", "NormalColor", errors.New("x"))
	})
}

func TestLogStyleLoaded(t *testing.T) {
	h := newTestHandler()

	LogStyleLoaded(slog.New(h), "defaults", 9)

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "style loaded", record["msg"])
	assert.Equal(t, "defaults", record["source"])
	assert.Equal(t, float64(9), record["applied"])
}

func TestLogStyleLoadError(t *testing.T) {
	h := newTestHandler()

	LogStyleLoadError(slog.New(h), "file", errors.New("parse json: unexpected EOF"))

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "parse json: unexpected EOF", record["error"])

	assert.NotPanics(t, func() {
		LogStyleLoadError(nil, "file", errors.New("x"))
	})
}
