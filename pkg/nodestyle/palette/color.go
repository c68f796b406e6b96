package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements image/color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// DistanceSq returns the squared per-channel RGB distance between c and o:
// (Δr)² + (Δg)² + (Δb)².
func (c Color) DistanceSq(o Color) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

// HSL is a color in hue/saturation/lightness form.
// H is in degrees. S and L use a 0..255 scale.
type HSL struct {
	H, S, L int
}

// RGB converts the HSL color to RGB, clamping out-of-range components.
func (h HSL) RGB() Color {
	r, g, b := colorful.Hsl(float64(h.H), float64(h.S)/255, float64(h.L)/255).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
