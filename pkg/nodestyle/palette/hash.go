package palette

import "github.com/cespare/xxhash/v2"

// Candidate hue, saturation and lightness bands.
const (
	hueRange       = 255
	saturationBase = 120
	saturationSpan = 129
	lightnessBase  = 160
	lightnessSpan  = 40
)

// Hash returns a stable 64-bit hash of typeID seeded with seed.
// The value depends only on its arguments and is the same on every run and platform.
func Hash(typeID string, seed int) uint64 {
	d := xxhash.NewWithSeed(uint64(seed))
	_, _ = d.WriteString(typeID)
	return d.Sum64()
}

// Candidate derives the HSL color tried for typeID at the given seed.
//
// Hue is taken modulo 255, not 360, so hues land in [0, 254].
// Saturation lands in [120, 248] and lightness in [140, 179].
func Candidate(typeID string, seed int) HSL {
	return candidateFromHash(Hash(typeID, seed))
}

func candidateFromHash(h uint64) HSL {
	return HSL{
		H: int(h % hueRange),
		S: saturationBase + int(h%saturationSpan),
		L: lightnessBase + int(h%lightnessSpan) - lightnessSpan/2,
	}
}
