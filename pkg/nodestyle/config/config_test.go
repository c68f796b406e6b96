package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/nodestyle/pkg/nodestyle/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies Config creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.NotNil(t, cfg.Raw())
		})
	}
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"name": "gray"}, "name", "default", "gray"},
		{"key missing", map[string]any{"other": "value"}, "name", "default", "default"},
		{"null value", map[string]any{"name": nil}, "name", "default", "default"},
		{"empty string", map[string]any{"name": ""}, "name", "default", ""},
		{"wrong type", map[string]any{"name": 123}, "name", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.New(tt.data).String(tt.key, tt.defaultVal))
		})
	}
}

// TestBool verifies bool extraction with defaults.
func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal bool
		want       bool
	}{
		{"true", map[string]any{"flag": true}, false, true},
		{"false", map[string]any{"flag": false}, true, false},
		{"missing", map[string]any{}, true, true},
		{"null", map[string]any{"flag": nil}, true, true},
		{"string is not bool", map[string]any{"flag": "true"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.New(tt.data).Bool("flag", tt.defaultVal))
		})
	}
}

// TestFloat verifies float extraction from numeric types.
func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want float64
	}{
		{"float64", map[string]any{"width": 2.5}, 2.5},
		{"int", map[string]any{"width": 3}, 3},
		{"int64", map[string]any{"width": int64(4)}, 4},
		{"missing", map[string]any{}, 1},
		{"null", map[string]any{"width": nil}, 1},
		{"string", map[string]any{"width": "3.0"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.New(tt.data).Float("width", 1))
		})
	}
}

func TestIsFloatAndIsBool(t *testing.T) {
	cfg := config.New(map[string]any{
		"f": 1.5,
		"i": 2,
		"b": true,
		"s": "x",
		"n": nil,
	})

	assert.True(t, cfg.IsFloat("f"))
	assert.True(t, cfg.IsFloat("i"))
	assert.False(t, cfg.IsFloat("b"))
	assert.False(t, cfg.IsFloat("n"))
	assert.False(t, cfg.IsFloat("missing"))

	assert.True(t, cfg.IsBool("b"))
	assert.False(t, cfg.IsBool("s"))
	assert.False(t, cfg.IsBool("n"))
}

func TestSection(t *testing.T) {
	cfg := config.New(map[string]any{
		"ConnectionStyle": map[string]any{"LineWidth": 3.0},
		"scalar":          1,
		"null":            nil,
	})

	assert.Equal(t, 3.0, cfg.Section("ConnectionStyle").Float("LineWidth", 0))
	assert.Empty(t, cfg.Section("scalar").Raw())
	assert.Empty(t, cfg.Section("null").Raw())
	assert.Empty(t, cfg.Section("missing").Raw())
}

// TestHas verifies null values read as missing.
func TestHas(t *testing.T) {
	cfg := config.New(map[string]any{"present": 0, "null": nil})

	assert.True(t, cfg.Has("present"))
	assert.False(t, cfg.Has("null"))
	assert.False(t, cfg.Has("missing"))
}

func TestAny(t *testing.T) {
	arr := []any{1.0, 2.0, 3.0}
	cfg := config.New(map[string]any{"color": arr, "null": nil})

	assert.Equal(t, arr, cfg.Any("color", nil))
	assert.Equal(t, "fallback", cfg.Any("null", "fallback"))
}

func TestFromJSON(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{"ConnectionStyle": {"NormalColor": [1, 2, 3], "LineWidth": 3.0, "HoveredColor": null}}`))
	require.NoError(t, err)

	cs := cfg.Section("ConnectionStyle")
	assert.Equal(t, []any{1.0, 2.0, 3.0}, cs.Any("NormalColor", nil))
	assert.Equal(t, 3.0, cs.Float("LineWidth", 0))
	assert.False(t, cs.Has("HoveredColor"))
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := config.FromJSON([]byte(`{"ConnectionStyle": `))
	assert.Error(t, err)

	_, err = config.FromJSON([]byte(`[1, 2, 3]`))
	assert.Error(t, err)
}

func TestFromYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
ConnectionStyle:
  NormalColor: [1, 2, 3]
  LineWidth: 3
  UseDataDefinedColors: true
`))
	require.NoError(t, err)

	cs := cfg.Section("ConnectionStyle")
	assert.Equal(t, []any{1, 2, 3}, cs.Any("NormalColor", nil))
	assert.Equal(t, 3.0, cs.Float("LineWidth", 0))
	assert.True(t, cs.Bool("UseDataDefinedColors", false))
}

func TestFromYAML_NonStringKeys(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
ConnectionStyle:
  LineWidth: 2
  7: ignored
  TypeColors:
    Text: red
    42: blue
    true: green
  Points:
    - 1: one
`))
	require.NoError(t, err)

	cs := cfg.Section("ConnectionStyle")
	assert.Equal(t, 2.0, cs.Float("LineWidth", 0))
	assert.Equal(t, "ignored", cs.String("7", ""))

	types := cs.Section("TypeColors")
	assert.Equal(t, "red", types.String("Text", ""))
	assert.Equal(t, "blue", types.String("42", ""))
	assert.Equal(t, "green", types.String("true", ""))

	assert.Equal(t, []any{map[string]any{"1": "one"}}, cs.Any("Points", nil))
}

func TestIsSection(t *testing.T) {
	cfg := config.New(map[string]any{
		"object": map[string]any{},
		"nested": config.New(nil),
		"scalar": "red",
		"null":   nil,
	})

	assert.True(t, cfg.IsSection("object"))
	assert.True(t, cfg.IsSection("nested"))
	assert.False(t, cfg.IsSection("scalar"))
	assert.False(t, cfg.IsSection("null"))
	assert.False(t, cfg.IsSection("missing"))
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("key: [unclosed"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse(config.FormatJSON, []byte(`{"a": true}`))
	require.NoError(t, err)
	assert.True(t, cfg.Bool("a", false))

	cfg, err = config.Parse(config.FormatYAML, []byte("a: true"))
	require.NoError(t, err)
	assert.True(t, cfg.Bool("a", false))

	_, err = config.Parse("toml", []byte("a = true"))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "style.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"LineWidth": 4}`), 0o644))
	cfg, err := config.FromFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Float("LineWidth", 0))

	yamlPath := filepath.Join(dir, "style.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte("LineWidth: 5"), 0o644))
	cfg, err = config.FromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Float("LineWidth", 0))
}

func TestFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.FromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	txtPath := filepath.Join(dir, "style.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("{}"), 0o644))
	_, err = config.FromFile(txtPath)
	assert.Error(t, err)
}
