package gcanvas

import (
	"errors"

	"github.com/gogpu/gcanvas/internal/raster"
	"github.com/gogpu/gcanvas/internal/stroke"
)

// ErrInvalidBitmap is returned by New when the destination bitmap cannot be
// drawn into.
var ErrInvalidBitmap = errors.New("gcanvas: invalid bitmap")

// Canvas draws into a caller-owned Bitmap.
//
// Every drawing call maps its geometry through the current transform
// (CTM), rasterizes it without anti-aliasing and composites SRC-OVER into
// the destination. Drawing that falls entirely outside the bitmap, or
// whose geometry is degenerate, is silently skipped.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	dst   Bitmap
	ctm   Matrix
	stack []Matrix

	rast    *raster.Rasterizer
	stroker *stroke.Expander

	// Scratch buffers reused across draw calls.
	devPts  []raster.Point
	linePts []stroke.Point
	row     []Pixel
}

// New creates a canvas that draws into dst. The canvas keeps dst's pixel
// slice; drawing is visible to the caller immediately.
func New(dst Bitmap) (*Canvas, error) {
	if err := dst.validate(); err != nil {
		return nil, err
	}
	return &Canvas{
		dst:  dst,
		ctm:  Identity(),
		rast: raster.NewRasterizer(dst.Width, dst.Height),
		row:  make([]Pixel, dst.Width),
	}, nil
}

// Bitmap returns the destination bitmap.
func (c *Canvas) Bitmap() Bitmap {
	return c.dst
}

// Width returns the destination width in pixels.
func (c *Canvas) Width() int {
	return c.dst.Width
}

// Height returns the destination height in pixels.
func (c *Canvas) Height() int {
	return c.dst.Height
}

// mapPoints maps local points through the CTM into the device scratch
// buffer.
func (c *Canvas) mapPoints(pts []Point) []raster.Point {
	c.devPts = c.devPts[:0]
	for _, p := range pts {
		d := c.ctm.MapPoint(p)
		c.devPts = append(c.devPts, raster.Point{X: d.X, Y: d.Y})
	}
	return c.devPts
}
