package math3d

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a linear-space RGB triple. Channels are not bounded to [0,1]
// until Clamp is called; intermediate shading sums may exceed 1.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color.
func NewColor(r, g, b float64) Color {
	return Color{r, g, b}
}

// Black returns the zero color.
func Black() Color {
	return Color{}
}

// White returns full-intensity white.
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the channel-wise sum a + b.
func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B}
}

// Mul returns the channel-wise product a * b.
func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B}
}

// Scale returns the channel-wise product of a and scalar s.
func (a Color) Scale(s float64) Color {
	return Color{a.R * s, a.G * s, a.B * s}
}

// Clamp saturates each channel to [0,1]. Idempotent: Clamp(Clamp(c)) == Clamp(c).
func (a Color) Clamp() Color {
	return Color{clampUnit(a.R), clampUnit(a.G), clampUnit(a.B)}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToRGBA8 clamps the color, applies the sRGB transfer function (the core
// shades in linear light but PNG output is sRGB), and rounds each channel
// to an 8-bit byte. Alpha is always fixed at 0, matching the core's output
// convention.
func (a Color) ToRGBA8() color.RGBA {
	c := a.Clamp()
	r, g, b := colorful.LinearRgb(c.R, c.G, c.B).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0}
}
