package stroke

import "github.com/chewxy/math32"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float32
}

// add returns p + v*s.
func (p Point) add(v Vec2, s float32) Point {
	return Point{X: p.X + v.X*s, Y: p.Y + v.Y*s}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// normal returns the vector rotated a quarter turn clockwise in y-down
// space, i.e. (y, -x).
func (v Vec2) normal() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// BevelMiterLimit is the miter limit value that forces every join to bevel.
const BevelMiterLimit = 3

// minMiterDenom guards the miter point against turns of nearly 180 degrees.
const minMiterDenom = 1e-4

// Style describes how a polyline is stroked.
type Style struct {
	Width      float32
	MiterLimit float32
	AddCap     bool
}

// DefaultStyle returns a one unit wide stroke with bevel joins and no caps.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		MiterLimit: BevelMiterLimit,
	}
}

// EmitFunc receives one convex polygon. The slice is only valid for the
// duration of the call.
type EmitFunc func(poly []Point)

// segment is one non-degenerate piece of the polyline.
type segment struct {
	a, b Point
	dir  Vec2 // unit direction a->b
}

// Expander converts polylines into quads and join polygons.
// It keeps scratch storage between calls and is not safe for concurrent use.
type Expander struct {
	style Style
	segs  []segment
	poly  [4]Point
}

// NewExpander creates an expander for the given style.
func NewExpander(style Style) *Expander {
	return &Expander{style: style}
}

// SetStyle replaces the style used by later calls to Expand.
func (e *Expander) SetStyle(style Style) {
	e.style = style
}

// Expand strokes pts, calling emit for every quad and join polygon.
//
// An open path of n points has n-1 segments and n-2 joins; a closed path has
// n segments and n joins. Fewer than two points, or a non-positive width,
// emit nothing. Zero-length segments are dropped and their neighbours are
// joined directly, so a repeated point still gets its join.
func (e *Expander) Expand(pts []Point, closed bool, emit EmitFunc) {
	n := len(pts)
	if n < 2 || !(e.style.Width > 0) {
		return
	}
	half := e.style.Width / 2

	count := n - 1
	if closed {
		count = n
	}
	e.segs = e.segs[:0]
	for i := 0; i < count; i++ {
		if s, ok := newSegment(pts[i], pts[(i+1)%n]); ok {
			e.segs = append(e.segs, s)
		}
	}
	last := len(e.segs) - 1
	if last < 0 {
		return
	}

	for i, s := range e.segs {
		if i > 0 {
			e.join(e.segs[i-1], s, half, emit)
		}
		a, b := s.a, s.b
		if e.style.AddCap && !closed {
			if i == 0 {
				a = a.add(s.dir, -half)
			}
			if i == last {
				b = b.add(s.dir, half)
			}
		}
		nv := s.dir.normal()
		e.poly[0] = a.add(nv, -half)
		e.poly[1] = a.add(nv, half)
		e.poly[2] = b.add(nv, half)
		e.poly[3] = b.add(nv, -half)
		emit(e.poly[:4])
	}
	if closed && last > 0 {
		e.join(e.segs[last], e.segs[0], half, emit)
	}
}

// join emits the corner polygon where in ends and out starts.
func (e *Expander) join(in, out segment, half float32, emit EmitFunc) {
	u0, u1 := in.dir, out.dir
	dot := u0.Dot(u1)
	if u0.Cross(u1) == 0 && dot > 0 {
		return // straight continuation
	}

	n0, n1 := u0.normal(), u1.normal()
	side := half
	if n0.Dot(u1) >= 0 {
		side = -half
	}

	v := out.a
	e.poly[0] = v
	e.poly[1] = v.add(n0, side)
	if e.bevel(u0, u1, dot) {
		e.poly[2] = v.add(n1, side)
		emit(e.poly[:3])
		return
	}
	e.poly[2] = v.add(n0.Add(n1), side/(1+dot))
	e.poly[3] = v.add(n1, side)
	emit(e.poly[:4])
}

// bevel decides between a bevel and a miter join for unit directions u0, u1.
func (e *Expander) bevel(u0, u1 Vec2, dot float32) bool {
	limit := e.style.MiterLimit
	if limit == BevelMiterLimit || 1+dot < minMiterDenom {
		return true
	}
	h := math32.Abs(u0.X) + math32.Abs(u0.Y) + math32.Abs(u1.X) + math32.Abs(u1.Y)
	return h == 0 || h > limit
}

// newSegment returns the segment a->b, or false when it has no finite,
// non-zero length.
func newSegment(a, b Point) (segment, bool) {
	d := Vec2{X: b.X - a.X, Y: b.Y - a.Y}
	l := math32.Sqrt(d.X*d.X + d.Y*d.Y)
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return segment{}, false
	}
	return segment{a: a, b: b, dir: d.Scale(1 / l)}, true
}
