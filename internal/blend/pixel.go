// Package blend implements the pixel format and the compositing arithmetic
// shared by every fill path of the canvas.
//
// Pixels are packed premultiplied ARGB, 8 bits per channel, with alpha in the
// most significant byte. Colors arrive as straight (non-premultiplied) floats
// and are premultiplied on store.
package blend

// Pixel is a packed premultiplied ARGB value.
type Pixel uint32

const (
	shiftA = 24
	shiftR = 16
	shiftG = 8
	shiftB = 0
)

// PackARGB packs four premultiplied channel bytes into a Pixel.
// The caller is responsible for r, g, b <= a.
func PackARGB(a, r, g, b byte) Pixel {
	return Pixel(a)<<shiftA | Pixel(r)<<shiftR | Pixel(g)<<shiftG | Pixel(b)<<shiftB
}

// A returns the alpha byte.
func (p Pixel) A() byte { return byte(p >> shiftA) }

// R returns the premultiplied red byte.
func (p Pixel) R() byte { return byte(p >> shiftR) }

// G returns the premultiplied green byte.
func (p Pixel) G() byte { return byte(p >> shiftG) }

// B returns the premultiplied blue byte.
func (p Pixel) B() byte { return byte(p >> shiftB) }

// ARGB unpacks the pixel into its four bytes.
func (p Pixel) ARGB() (a, r, g, b byte) {
	return p.A(), p.R(), p.G(), p.B()
}

// IsOpaque reports whether the alpha byte is 255.
func (p Pixel) IsOpaque() bool { return p.A() == 0xFF }

// unitToByte is the scale used when converting a unit float to a byte by
// truncation: every value in [0,1] maps into [0,255] without a special case
// for 1.0.
const unitToByte = 255.9999

// FromColor converts a straight-alpha color to a premultiplied Pixel.
// Components are pinned to [0,1] first, then each channel is computed as
// trunc(a * 255.9999 * c).
//
// The product is truncated, not rounded: a channel of 0.5 at full alpha
// packs to 127, where round(a * 255.9999 * c) would give 128. Compare
// against truncated values when checking packed colors exactly.
func FromColor(a, r, g, b float32) Pixel {
	a, r, g, b = pin01(a), pin01(r), pin01(g), pin01(b)
	fa := a * unitToByte
	return PackARGB(byte(fa), byte(fa*r), byte(fa*g), byte(fa*b))
}
