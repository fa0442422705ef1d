package gcanvas

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// BytesPerPixel is the size of one packed Pixel in a Bitmap row.
const BytesPerPixel = 4

// Bitmap is a rectangular buffer of premultiplied pixels.
//
// RowBytes is the distance between the starts of two consecutive rows, in
// bytes; it must be a multiple of BytesPerPixel and at least
// Width*BytesPerPixel. Pixels is shared, not copied: a Canvas draws straight
// into the slice it was given.
type Bitmap struct {
	Width    int
	Height   int
	RowBytes int
	Pixels   []Pixel
}

// NewBitmap allocates a tightly packed, fully transparent bitmap.
// Negative dimensions are treated as zero.
func NewBitmap(width, height int) Bitmap {
	width, height = max(width, 0), max(height, 0)
	return Bitmap{
		Width:    width,
		Height:   height,
		RowBytes: width * BytesPerPixel,
		Pixels:   make([]Pixel, width*height),
	}
}

// Stride returns the row stride in pixels.
func (b Bitmap) Stride() int {
	return b.RowBytes / BytesPerPixel
}

// Row returns the visible pixels of row y.
func (b Bitmap) Row(y int) []Pixel {
	start := y * b.Stride()
	return b.Pixels[start : start+b.Width]
}

// At returns the pixel at (x, y), or 0 when out of bounds.
func (b Bitmap) At(x, y int) Pixel {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Pixels[y*b.Stride()+x]
}

// Set stores p at (x, y). Out-of-bounds coordinates are silently ignored.
func (b Bitmap) Set(x, y int, p Pixel) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pixels[y*b.Stride()+x] = p
}

// validate reports why b cannot back a canvas.
func (b Bitmap) validate() error {
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidBitmap, b.Width, b.Height)
	case b.RowBytes < b.Width*BytesPerPixel:
		return fmt.Errorf("%w: row bytes %d < %d", ErrInvalidBitmap, b.RowBytes, b.Width*BytesPerPixel)
	case b.RowBytes%BytesPerPixel != 0:
		return fmt.Errorf("%w: row bytes %d not a multiple of %d", ErrInvalidBitmap, b.RowBytes, BytesPerPixel)
	case len(b.Pixels) < (b.Height-1)*b.Stride()+b.Width:
		return fmt.Errorf("%w: %d pixels cannot hold %d rows of stride %d",
			ErrInvalidBitmap, len(b.Pixels), b.Height, b.Stride())
	}
	return nil
}

// ToImage copies the bitmap into an image.RGBA. Both use premultiplied
// alpha, so the conversion is a byte shuffle.
func (b Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		off := y * img.Stride
		for x, p := range row {
			i := off + x*4
			img.Pix[i+0] = p.R()
			img.Pix[i+1] = p.G()
			img.Pix[i+2] = p.B()
			img.Pix[i+3] = p.A()
		}
	}
	return img
}

// BitmapFromImage converts any image into a new tightly packed bitmap.
func BitmapFromImage(img image.Image) Bitmap {
	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	bm := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < bm.Height; y++ {
		row := bm.Row(y)
		off := y * rgba.Stride
		for x := range row {
			i := off + x*4
			a := rgba.Pix[i+3]
			row[x] = PackARGB(a, min(rgba.Pix[i+0], a), min(rgba.Pix[i+1], a), min(rgba.Pix[i+2], a))
		}
	}
	return bm
}
