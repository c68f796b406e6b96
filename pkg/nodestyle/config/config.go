package config

// Config wraps a map[string]any for type-safe value extraction.
//
// A key whose value is nil (JSON or YAML null) is treated as missing:
// Has reports false and every accessor returns its default.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

func (c Config) lookup(key string) (any, bool) {
	v, ok := c.data[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	v, ok := c.lookup(key)
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	v, ok := c.lookup(key)
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// Float returns the float64 value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - float64: used directly
//   - int: converted to float64
//   - int64: converted to float64
func (c Config) Float(key string, defaultVal float64) float64 {
	v, ok := c.lookup(key)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	return defaultVal
}

// IsFloat returns true if key holds a value Float can convert.
func (c Config) IsFloat(key string) bool {
	v, ok := c.lookup(key)
	if !ok {
		return false
	}
	switch v.(type) {
	case float64, int, int64:
		return true
	}
	return false
}

// IsBool returns true if key holds a bool.
func (c Config) IsBool(key string) bool {
	v, ok := c.lookup(key)
	if !ok {
		return false
	}
	_, isBool := v.(bool)
	return isBool
}

// Section returns the nested object at key as a Config.
// Returns an empty Config if key is missing or not an object.
//
// Accepts:
//   - map[string]any: from JSON and YAML
//   - Config: used directly
func (c Config) Section(key string) Config {
	v, ok := c.lookup(key)
	if !ok {
		return New(nil)
	}
	switch val := v.(type) {
	case map[string]any:
		return New(val)
	case Config:
		return val
	}
	return New(nil)
}

// IsSection reports whether key holds a nested object.
func (c Config) IsSection(key string) bool {
	v, ok := c.lookup(key)
	if !ok {
		return false
	}
	switch v.(type) {
	case map[string]any, Config:
		return true
	}
	return false
}

// Any returns the raw value for key, or defaultVal if missing.
func (c Config) Any(key string, defaultVal any) any {
	v, ok := c.lookup(key)
	if !ok {
		return defaultVal
	}
	return v
}

// Has returns true if the key exists in the config with a non-null value.
func (c Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}
