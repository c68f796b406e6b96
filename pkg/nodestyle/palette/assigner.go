package palette

import "github.com/randalmurphal/nodestyle/pkg/nodestyle/registry"

// Defaults for the color search.
const (
	// DefaultMaxSeed is the first seed tried. Seeds count down to 0,
	// so at most DefaultMaxSeed+1 candidates are evaluated.
	DefaultMaxSeed = 50

	// DefaultMinDistance is the squared RGB distance at or below which
	// two colors are considered indistinguishable.
	DefaultMinDistance = 2000
)

// Stats describes one fresh assignment.
type Stats struct {
	// Attempts is the number of candidates evaluated, 1..MaxSeed+1.
	Attempts int
	// FinalSeed is the seed that produced the returned color.
	FinalSeed int
	// Exhausted is true when every seed was tried and the seed-0
	// candidate was kept despite colliding with an existing color.
	Exhausted bool
}

// Observer is called after each fresh assignment.
type Observer func(typeID string, c Color, s Stats)

// Option configures an Assigner.
type Option func(*Assigner)

// WithMaxSeed sets the starting seed.
// Default: 50. Negative values are ignored.
func WithMaxSeed(n int) Option {
	return func(a *Assigner) {
		if n >= 0 {
			a.maxSeed = n
		}
	}
}

// WithMinDistance sets the squared RGB rejection threshold.
// Default: 2000. Negative values are ignored.
func WithMinDistance(d int) Option {
	return func(a *Assigner) {
		if d >= 0 {
			a.minDistance = d
		}
	}
}

// WithObserver registers a callback for fresh assignments.
// Cache hits do not invoke it.
func WithObserver(fn Observer) Option {
	return func(a *Assigner) {
		a.observer = fn
	}
}

// Assigner maps connection type identifiers to visually distinct colors.
//
// Each Assigner owns its registry; there is no shared palette. An
// identifier keeps the first color it was given for the Assigner's
// lifetime. Colors assigned later avoid every color assigned earlier,
// so the outcome depends on the order of first requests.
//
// Assigner is not safe for concurrent use.
type Assigner struct {
	colors      *registry.Registry[string, Color]
	maxSeed     int
	minDistance int
	observer    Observer
}

// NewAssigner creates an Assigner with an empty registry.
func NewAssigner(opts ...Option) *Assigner {
	a := &Assigner{
		colors:      registry.New[string, Color](),
		maxSeed:     DefaultMaxSeed,
		minDistance: DefaultMinDistance,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Lookup returns the color already assigned to typeID. It never assigns.
func (a *Assigner) Lookup(typeID string) (Color, bool) {
	return a.colors.Get(typeID)
}

// Assign returns the color for typeID, searching for and recording a new
// one if typeID has not been seen. A fresh assignment adds exactly one
// registry entry; repeated calls return the recorded color unchanged.
func (a *Assigner) Assign(typeID string) Color {
	if c, ok := a.colors.Get(typeID); ok {
		return c
	}

	c, stats := a.search(typeID)
	a.colors.Insert(typeID, c)

	if a.observer != nil {
		a.observer(typeID, c, stats)
	}
	return c
}

// Reserve records c as the color of typeID without searching, so that
// later assignments keep their distance from it. Returns false, leaving
// the registry unchanged, if typeID already has a color.
func (a *Assigner) Reserve(typeID string, c Color) bool {
	return a.colors.Insert(typeID, c)
}

// Len returns the number of assigned identifiers.
func (a *Assigner) Len() int {
	return a.colors.Len()
}

// TypeIDs returns the assigned identifiers in assignment order.
func (a *Assigner) TypeIDs() []string {
	return a.colors.Keys()
}

// Colors returns the assigned colors in assignment order.
func (a *Assigner) Colors() []Color {
	return a.colors.Values()
}

// search walks the seeds downward until a candidate clears every
// assigned color. The seed-0 candidate is kept even if it collides.
func (a *Assigner) search(typeID string) (Color, Stats) {
	var stats Stats
	seed := a.maxSeed
	for {
		c := Candidate(typeID, seed).RGB()
		stats.Attempts++
		stats.FinalSeed = seed

		if a.isDistinct(c) {
			return c, stats
		}
		if seed == 0 {
			stats.Exhausted = true
			return c, stats
		}
		seed--
	}
}

func (a *Assigner) isDistinct(c Color) bool {
	distinct := true
	a.colors.Range(func(_ string, taken Color) bool {
		if c.DistanceSq(taken) <= a.minDistance {
			distinct = false
		}
		return distinct
	})
	return distinct
}
