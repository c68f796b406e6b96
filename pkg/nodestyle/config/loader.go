package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a configuration document.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath detects the document format from a file extension.
// Supported extensions: .yaml, .yml, .json
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromFile loads configuration from a file, auto-detecting format by extension.
func FromFile(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return Parse(format, data)
}

// Parse decodes data in the given format.
func Parse(format Format, data []byte) (Config, error) {
	switch format {
	case FormatJSON:
		return FromJSON(data)
	case FormatYAML:
		return FromYAML(data)
	default:
		return Config{}, fmt.Errorf("unsupported config format: %q", format)
	}
}

// FromYAML parses YAML data into a Config.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	for k, v := range m {
		m[k] = normalizeYAML(v)
	}
	return New(m), nil
}

// normalizeYAML rewrites mappings decoded with non-string keys
// (map[any]any) into map[string]any, formatting each key with fmt.Sprint.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[fmt.Sprint(k)] = normalizeYAML(inner)
		}
		return m
	case map[string]any:
		for k, inner := range val {
			val[k] = normalizeYAML(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = normalizeYAML(inner)
		}
		return val
	}
	return v
}

// FromJSON parses JSON data into a Config.
// The top level must be an object.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return New(m), nil
}
