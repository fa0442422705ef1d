package gcanvas

import (
	"github.com/gogpu/gcanvas/internal/stroke"
)

// StrokePolygon strokes the polyline pts with st and fills the result with
// s. When closed is true the last point is joined back to the first.
//
// The stroke is emitted as one convex polygon per segment plus one per
// join; each is composited separately, so translucent strokes double-blend
// where a join overlaps its segments.
func (c *Canvas) StrokePolygon(pts []Point, closed bool, st Stroke, s Shader) {
	if len(pts) < 2 {
		skipped("StrokePolygon", "fewer than 2 points")
		return
	}
	if !(st.Width > 0) {
		skipped("StrokePolygon", "non-positive width")
		return
	}
	if !s.SetContext(c.ctm) {
		skipped("StrokePolygon", "shader rejected transform")
		return
	}

	c.linePts = c.linePts[:0]
	for _, p := range pts {
		c.linePts = append(c.linePts, stroke.Point{X: p.X, Y: p.Y})
	}
	if c.stroker == nil {
		c.stroker = stroke.NewExpander(st.style())
	} else {
		c.stroker.SetStyle(st.style())
	}

	var poly []Point
	c.stroker.Expand(c.linePts, closed, func(sp []stroke.Point) {
		poly = poly[:0]
		for _, p := range sp {
			poly = append(poly, Point{X: p.X, Y: p.Y})
		}
		c.shadeConvex(poly, s)
	})
}

// StrokePolygonColor strokes pts with a solid color.
func (c *Canvas) StrokePolygonColor(pts []Point, closed bool, st Stroke, col Color) {
	if !(col.A > 0) {
		skipped("StrokePolygonColor", "transparent color")
		return
	}
	c.StrokePolygon(pts, closed, st, NewColorShader(col))
}

// StrokeLine strokes the segment p0-p1.
func (c *Canvas) StrokeLine(p0, p1 Point, st Stroke, s Shader) {
	c.StrokePolygon([]Point{p0, p1}, false, st, s)
}

// StrokeRect strokes the outline of r as a closed polyline.
func (c *Canvas) StrokeRect(r Rect, st Stroke, s Shader) {
	q := r.Quad()
	c.StrokePolygon(q[:], true, st, s)
}
