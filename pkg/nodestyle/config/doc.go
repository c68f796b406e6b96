/*
Package config provides type-safe extraction from decoded style documents.

# Overview

Style documents are JSON or YAML objects. config wraps the decoded
map[string]any and provides typed accessors that return defaults for
missing keys, null values and type mismatches:

	doc, err := config.FromJSON([]byte(`{"ConnectionStyle": {"LineWidth": 3}}`))
	if err != nil {
	    return err
	}

	cs := doc.Section("ConnectionStyle")
	width := cs.Float("LineWidth", 1.0) // 3
	flag := cs.Bool("Missing", false)   // false

# Null Values

A key mapped to null is indistinguishable from a missing key. This lets
an overlay document list a key without overriding the value beneath it.

# File Loading

	cfg, err := config.FromFile("style.yaml")

FromFile picks the decoder from the file extension (.json, .yaml, .yml).
Parse decodes bytes when the format is known some other way.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
