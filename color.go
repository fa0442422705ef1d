package gcanvas

import "github.com/gogpu/gcanvas/internal/blend"

// Pixel is a packed premultiplied ARGB value, alpha in the top byte.
// It is the only representation stored in a Bitmap.
type Pixel = blend.Pixel

// PackARGB packs premultiplied channel bytes into a Pixel.
func PackARGB(a, r, g, b byte) Pixel {
	return blend.PackARGB(a, r, g, b)
}

// Color is a straight-alpha color with float components nominally in [0, 1].
// Out-of-range components are accepted; negative values are treated as zero
// when drawing.
type Color struct {
	A, R, G, B float32
}

// ARGB creates a color from its components.
func ARGB(a, r, g, b float32) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// RGB creates an opaque color.
func RGB(r, g, b float32) Color {
	return Color{A: 1, R: r, G: g, B: b}
}

// Common colors.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
)

// Pin returns the color with every component clamped to [0, 1].
func (c Color) Pin() Color {
	return Color{A: clamp01(c.A), R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Pixel converts the color to a premultiplied pixel.
// Components are pinned first; each byte is trunc(a * 255.9999 * channel).
// Truncation rather than rounding means ARGB(1, 0.5, 0.5, 0.5) packs to
// 0xFF7F7F7F, not 0xFF808080.
func (c Color) Pixel() Pixel {
	return blend.FromColor(c.A, c.R, c.G, c.B)
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		A: c.A + (other.A-c.A)*t,
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// clamp01 restricts x to [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
