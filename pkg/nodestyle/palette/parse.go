package palette

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor indicates a value that cannot be read as a color.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor reads a color from a decoded style document value.
//
// Accepts:
//   - Color: used directly
//   - string: "#rgb", "#rrggbb", "#aarrggbb" (alpha dropped) or an SVG color name
//   - []any, []int, []float64: exactly three integral channels in [0, 255]
func ParseColor(v any) (Color, error) {
	switch val := v.(type) {
	case Color:
		return val, nil
	case string:
		return parseString(val)
	case []any:
		return parseChannels(val)
	case []int:
		channels := make([]any, len(val))
		for i, n := range val {
			channels[i] = n
		}
		return parseChannels(channels)
	case []float64:
		channels := make([]any, len(val))
		for i, n := range val {
			channels[i] = n
		}
		return parseChannels(channels)
	}
	return Color{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidColor, v)
}

func parseString(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s
		if len(hex) == 9 {
			hex = "#" + hex[3:]
		}
		if len(hex) != 4 && len(hex) != 7 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		return fromColorful(c), nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
	}
	return Color{R: named.R, G: named.G, B: named.B}, nil
}

func parseChannels(vals []any) (Color, error) {
	if len(vals) != 3 {
		return Color{}, fmt.Errorf("%w: want 3 channels, got %d", ErrInvalidColor, len(vals))
	}
	var rgb [3]uint8
	for i, v := range vals {
		n, ok := channel(v)
		if !ok {
			return Color{}, fmt.Errorf("%w: channel %d: %v", ErrInvalidColor, i, v)
		}
		rgb[i] = n
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

func channel(v any) (uint8, bool) {
	var n int64
	switch val := v.(type) {
	case int:
		n = int64(val)
	case int64:
		n = val
	case uint64:
		if val > math.MaxUint8 {
			return 0, false
		}
		n = int64(val)
	case float64:
		// Only integral values; JSON numbers decode as float64
		if val != math.Trunc(val) {
			return 0, false
		}
		if val < 0 || val > math.MaxUint8 {
			return 0, false
		}
		n = int64(val)
	default:
		return 0, false
	}
	if n < 0 || n > math.MaxUint8 {
		return 0, false
	}
	return uint8(n), true
}
