package gcanvas

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order, the layout of [f32.Aff3]:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix f32.Aff3

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
	}
}

// Translate creates a translation matrix.
func Translate(tx, ty float32) Matrix {
	return Matrix{
		1, 0, tx,
		0, 1, ty,
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float32) Matrix {
	return Matrix{
		sx, 0, 0,
		0, sy, 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(radians float32) Matrix {
	c := math32.Cos(radians)
	s := math32.Sin(radians)
	return Matrix{
		c, -s, 0,
		s, c, 0,
	}
}

// MatrixFromAff3 converts an x/image affine matrix.
func MatrixFromAff3(m f32.Aff3) Matrix { return Matrix(m) }

// Concat returns m ∘ other: a point mapped by the result is first mapped by
// other, then by m.
//
//	[ A B C ] [ a b c ]   [ Aa+Bd  Ab+Be  Ac+Bf+C ]
//	[ D E F ]*[ d e f ] = [ Da+Ed  Db+Ee  Dc+Ef+F ]
func (m Matrix) Concat(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[3],
		m[0]*other[1] + m[1]*other[4],
		m[0]*other[2] + m[1]*other[5] + m[2],
		m[3]*other[0] + m[4]*other[3],
		m[3]*other[1] + m[4]*other[4],
		m[3]*other[2] + m[4]*other[5] + m[5],
	}
}

// MapPoint applies the transformation to a point.
func (m Matrix) MapPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// MapPoints maps src into dst, which must be at least as long as src.
// It returns dst[:len(src)].
func (m Matrix) MapPoints(dst, src []Point) []Point {
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = m.MapPoint(p)
	}
	return dst
}

// MapRect maps the two defining corners of r and returns the rect they span.
// The result is only exact when m is axis aligned; mirrored axes are
// normalized so the result is never inverted by a negative scale. An empty
// rect maps to the zero Rect.
func (m Matrix) MapRect(r Rect) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	p0 := m.MapPoint(Point{X: r.Left, Y: r.Top})
	p1 := m.MapPoint(Point{X: r.Right, Y: r.Bottom})
	if p1.X < p0.X {
		p0.X, p1.X = p1.X, p0.X
	}
	if p1.Y < p0.Y {
		p0.Y, p1.Y = p1.Y, p0.Y
	}
	return Rect{Left: p0.X, Top: p0.Y, Right: p1.X, Bottom: p1.Y}
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsAxisAligned reports whether m only scales and translates, so that
// axis-aligned rectangles stay axis aligned.
func (m Matrix) IsAxisAligned() bool {
	return m[1] == 0 && m[3] == 0
}

// XScale returns the length of the mapped unit x vector.
func (m Matrix) XScale() float32 {
	return math32.Sqrt(m[0]*m[0] + m[3]*m[3])
}
