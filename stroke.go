package gcanvas

import "github.com/gogpu/gcanvas/internal/stroke"

// BevelMiterLimit is the miter limit value that forces every join to be
// beveled.
const BevelMiterLimit = stroke.BevelMiterLimit

// Stroke defines the style for stroking polylines.
type Stroke struct {
	// Width is the line width in local units. A non-positive width draws
	// nothing.
	Width float32

	// MiterLimit bounds how far a miter join may extend before it is
	// replaced by a bevel. BevelMiterLimit bevels every join.
	MiterLimit float32

	// AddCap extends the two ends of an open polyline by half the width
	// (square caps). Closed polylines have no ends.
	AddCap bool
}

// DefaultStroke returns a Stroke with default settings:
// a 1-unit line, miter limit 4, no caps.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float32) Stroke {
	s.Width = w
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
func (s Stroke) WithMiterLimit(limit float32) Stroke {
	s.MiterLimit = limit
	return s
}

// WithCap returns a copy of the Stroke with square caps enabled or not.
func (s Stroke) WithCap(addCap bool) Stroke {
	s.AddCap = addCap
	return s
}

func (s Stroke) style() stroke.Style {
	return stroke.Style{
		Width:      s.Width,
		MiterLimit: s.MiterLimit,
		AddCap:     s.AddCap,
	}
}
