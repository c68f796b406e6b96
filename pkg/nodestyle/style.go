package nodestyle

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/randalmurphal/nodestyle/pkg/nodestyle/config"
	"github.com/randalmurphal/nodestyle/pkg/nodestyle/observability"
	"github.com/randalmurphal/nodestyle/pkg/nodestyle/palette"
	"github.com/randalmurphal/nodestyle/pkg/nodestyle/theme"
)

//go:embed default_style.json
var defaultStyle []byte

// Document keys.
const (
	sectionKey = "ConnectionStyle"
	typesKey   = "TypeColors"
)

// Overlay sources.
const (
	sourceDefaults = "defaults"
	sourceJSON     = "json"
	sourceYAML     = "yaml"
	sourceFile     = "file"
	sourceTheme    = "theme"
)

// ConnectionStyle holds the visual settings for connections and the
// colors assigned to connection types.
//
// Settings come from an embedded default document overlaid by zero or
// more caller documents. Overlays are meant to run during setup and must
// not race with reads. The type color methods are safe for concurrent use.
type ConnectionStyle struct {
	constructionColor palette.Color
	normalColor       palette.Color
	selectedColor     palette.Color
	selectedHaloColor palette.Color
	hoveredColor      palette.Color

	lineWidth             float64
	constructionLineWidth float64
	pointDiameter         float64

	useDataDefinedColors bool

	mu    sync.Mutex // guards types
	types *palette.Assigner

	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	paletteOpts []palette.Option
}

// New creates a ConnectionStyle from the default document.
func New(opts ...Option) *ConnectionStyle {
	s := &ConnectionStyle{
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}

	paletteOpts := append(append([]palette.Option{}, s.paletteOpts...), palette.WithObserver(s.typeColorAssigned))
	s.types = palette.NewAssigner(paletteOpts...)

	if err := s.load(sourceDefaults, "", config.FormatJSON, defaultStyle); err != nil {
		panic(fmt.Sprintf("nodestyle: embedded default style: %v", err))
	}
	return s
}

// NewFromJSON creates a ConnectionStyle from the defaults overlaid by text.
func NewFromJSON(text string, opts ...Option) (*ConnectionStyle, error) {
	s := New(opts...)
	if err := s.LoadJSON([]byte(text)); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromTheme creates a ConnectionStyle from the defaults overlaid by the
// named theme. Theme documents are decoded as YAML, which also accepts JSON.
func NewFromTheme(store theme.Store, name string, opts ...Option) (*ConnectionStyle, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	s := New(opts...)
	doc, err := store.Load(name)
	if err != nil {
		return nil, s.loadFailed(&LoadError{Source: sourceTheme, Name: name, Err: err})
	}
	if err := s.load(sourceTheme, name, config.FormatYAML, doc); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadJSON overlays a JSON style document. Keys that are absent or null
// keep their current values.
func (s *ConnectionStyle) LoadJSON(data []byte) error {
	return s.load(sourceJSON, "", config.FormatJSON, data)
}

// LoadYAML overlays a YAML style document.
func (s *ConnectionStyle) LoadYAML(data []byte) error {
	return s.load(sourceYAML, "", config.FormatYAML, data)
}

// LoadFile overlays a style document from a .json, .yaml or .yml file.
func (s *ConnectionStyle) LoadFile(path string) error {
	format, err := config.FormatFromPath(path)
	if err != nil {
		return s.loadFailed(&LoadError{Source: sourceFile, Name: path, Err: err})
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s.loadFailed(&LoadError{Source: sourceFile, Name: path, Err: err})
	}
	return s.load(sourceFile, path, format, data)
}

func (s *ConnectionStyle) load(source, name string, format config.Format, data []byte) error {
	doc, err := config.Parse(format, data)
	if err != nil {
		return s.loadFailed(&LoadError{
			Source: source,
			Name:   name,
			Err:    fmt.Errorf("%w: %w", ErrInvalidDocument, err),
		})
	}

	applied := s.apply(source, s.section(source, doc, sectionKey))

	observability.LogStyleLoaded(s.logger, source, applied)
	s.metrics.RecordStyleLoad(context.Background(), source, nil)
	return nil
}

func (s *ConnectionStyle) loadFailed(err *LoadError) error {
	observability.LogStyleLoadError(s.logger, err.Source, err)
	s.metrics.RecordStyleLoad(context.Background(), err.Source, err)
	return err
}

// apply copies every usable key from section into s and returns how
// many fields changed.
func (s *ConnectionStyle) apply(source string, section config.Config) int {
	colors := []struct {
		key string
		dst *palette.Color
	}{
		{"ConstructionColor", &s.constructionColor},
		{"NormalColor", &s.normalColor},
		{"SelectedColor", &s.selectedColor},
		{"SelectedHaloColor", &s.selectedHaloColor},
		{"HoveredColor", &s.hoveredColor},
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"LineWidth", &s.lineWidth},
		{"ConstructionLineWidth", &s.constructionLineWidth},
		{"PointDiameter", &s.pointDiameter},
	}

	applied := 0
	for _, f := range colors {
		if !section.Has(f.key) {
			observability.LogUndefinedValue(s.logger, source, f.key)
			continue
		}
		c, err := palette.ParseColor(section.Any(f.key, nil))
		if err != nil {
			observability.LogInvalidValue(s.logger, source, f.key, err)
			continue
		}
		*f.dst = c
		applied++
	}

	for _, f := range floats {
		if !section.Has(f.key) {
			observability.LogUndefinedValue(s.logger, source, f.key)
			continue
		}
		if !section.IsFloat(f.key) {
			observability.LogInvalidValue(s.logger, source, f.key,
				fmt.Errorf("want number, got %T", section.Any(f.key, nil)))
			continue
		}
		*f.dst = section.Float(f.key, *f.dst)
		applied++
	}

	const flagKey = "UseDataDefinedColors"
	switch {
	case !section.Has(flagKey):
		observability.LogUndefinedValue(s.logger, source, flagKey)
	case !section.IsBool(flagKey):
		observability.LogInvalidValue(s.logger, source, flagKey,
			fmt.Errorf("want bool, got %T", section.Any(flagKey, nil)))
	default:
		s.useDataDefinedColors = section.Bool(flagKey, s.useDataDefinedColors)
		applied++
	}

	return applied + s.applyTypeColors(source, s.section(source, section, typesKey))
}

// section returns the nested object at key, logging a value that is
// present but not an object.
func (s *ConnectionStyle) section(source string, parent config.Config, key string) config.Config {
	if parent.Has(key) && !parent.IsSection(key) {
		observability.LogInvalidValue(s.logger, source, key,
			fmt.Errorf("want object, got %T", parent.Any(key, nil)))
	}
	return parent.Section(key)
}

// applyTypeColors reserves preset type colors. Types that already have a
// color keep it.
func (s *ConnectionStyle) applyTypeColors(source string, types config.Config) int {
	raw := types.Raw()
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, id := range ids {
		if !types.Has(id) {
			continue
		}
		c, err := palette.ParseColor(types.Any(id, nil))
		if err != nil {
			observability.LogInvalidValue(s.logger, source, typesKey+"."+id, err)
			continue
		}
		if s.types.Reserve(id, c) {
			applied++
		}
	}
	return applied
}

// ConstructionColor is the color of a connection being dragged.
func (s *ConnectionStyle) ConstructionColor() palette.Color { return s.constructionColor }

// NormalColor is the default connection color.
func (s *ConnectionStyle) NormalColor() palette.Color { return s.normalColor }

// SelectedColor is the color of a selected connection.
func (s *ConnectionStyle) SelectedColor() palette.Color { return s.selectedColor }

// SelectedHaloColor is the halo drawn around a selected connection.
func (s *ConnectionStyle) SelectedHaloColor() palette.Color { return s.selectedHaloColor }

// HoveredColor is the color of a connection under the cursor.
func (s *ConnectionStyle) HoveredColor() palette.Color { return s.hoveredColor }

// LineWidth is the connection stroke width.
func (s *ConnectionStyle) LineWidth() float64 { return s.lineWidth }

// ConstructionLineWidth is the stroke width of a connection being dragged.
func (s *ConnectionStyle) ConstructionLineWidth() float64 { return s.constructionLineWidth }

// PointDiameter is the diameter of connection end points.
func (s *ConnectionStyle) PointDiameter() float64 { return s.pointDiameter }

// UseDataDefinedColors reports whether connections take their type's color
// instead of NormalColor.
func (s *ConnectionStyle) UseDataDefinedColors() bool { return s.useDataDefinedColors }

// LookupTypeColor returns the color already assigned to typeID.
// It never assigns.
func (s *ConnectionStyle) LookupTypeColor(typeID string) (palette.Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.types.Lookup(typeID)
}

// AssignTypeColor returns the color for typeID, assigning one on first use.
// The assignment is kept for the lifetime of the style.
func (s *ConnectionStyle) AssignTypeColor(typeID string) palette.Color {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.types.Lookup(typeID); ok {
		s.metrics.RecordCacheHit(context.Background())
		return c
	}
	return s.types.Assign(typeID)
}

// ReserveTypeColor fixes the color of typeID if it has none yet.
// Later assignments keep their distance from it.
func (s *ConnectionStyle) ReserveTypeColor(typeID string, c palette.Color) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.types.Reserve(typeID, c)
}

// TypeColorCount returns the number of types with a color.
func (s *ConnectionStyle) TypeColorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.types.Len()
}

// ConnectionColor returns the color to draw a connection carrying typeID:
// the type's color when UseDataDefinedColors is set, NormalColor otherwise.
// With UseDataDefinedColors set this may assign a color.
func (s *ConnectionStyle) ConnectionColor(typeID string) palette.Color {
	if !s.useDataDefinedColors {
		return s.normalColor
	}
	return s.AssignTypeColor(typeID)
}

// typeColorAssigned runs under s.mu from inside Assign.
func (s *ConnectionStyle) typeColorAssigned(typeID string, c palette.Color, stats palette.Stats) {
	s.metrics.RecordAssignment(context.Background(), stats.Attempts, stats.Exhausted)
	if stats.Exhausted {
		observability.LogBudgetExhausted(s.logger, typeID, c.Hex(), stats.Attempts, s.types.Len())
		return
	}
	observability.LogTypeColorAssigned(s.logger, typeID, c.Hex(), stats.Attempts)
}
