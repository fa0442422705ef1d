// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts convex polygons into horizontal pixel spans.
//
// The algorithm is the classic edge table / active edge list scan conversion,
// restricted to convex shapes: every scanline has at most one span, bounded
// by the first two active edges. Containment is center based with half-up
// rounding and a half-open interval: pixel x on row y is covered when
// floor(left+0.5) <= x < floor(right+0.5).
package raster

// SpanFunc receives one clipped, non-empty span [x0, x1) on row y.
type SpanFunc func(y, x0, x1 int)

// Rasterizer scan-converts convex polygons for a fixed-size surface.
//
// A Rasterizer is not safe for concurrent use. Its edge storage is reused
// between calls but no edge outlives a single FillConvex call.
type Rasterizer struct {
	width  int
	height int
	table  EdgeTable
	active []int32
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		active: make([]int32, 0, 8),
	}
}

// FillConvex sweeps a convex polygon given in device space and calls span
// for every covered, on-surface run of pixels.
//
// Fewer than three points is a silent no-op. Spans are clipped to
// [0,width)x[0,height).
func (r *Rasterizer) FillConvex(pts []Point, span SpanFunc) {
	if r.width <= 0 || r.height <= 0 {
		return
	}
	if !r.table.Build(pts, r.height-1) {
		return
	}
	yMin, yMax := r.table.YRange()

	r.active = r.active[:0]
	for y := yMin; y <= yMax; y++ {
		r.activate(y)
		r.retire(y)
		if len(r.active) == 0 {
			continue
		}
		if len(r.active) >= 2 {
			e0 := &r.table.edges[r.active[0]]
			e1 := &r.table.edges[r.active[1]]
			if x0, x1, ok := r.clipSpan(e0.x, e1.x); ok {
				span(y, x0, x1)
			}
		}
		r.advance()
	}
	r.active = r.active[:0]
}

// activate moves the edges bucketed at row y into the active list,
// insertion-sorted by x.
func (r *Rasterizer) activate(y int) {
	edges := r.table.edges
	for h := r.table.head(y); h != noEdge; h = edges[h].next {
		e := &edges[h]
		i := len(r.active)
		r.active = append(r.active, h)
		for i > 0 && e.less(&edges[r.active[i-1]]) {
			r.active[i] = r.active[i-1]
			i--
		}
		r.active[i] = h
	}
}

// retire drops active edges that end on row y, keeping the order.
func (r *Rasterizer) retire(y int) {
	edges := r.table.edges
	j := 0
	for _, h := range r.active {
		if edges[h].yMax > y {
			r.active[j] = h
			j++
		}
	}
	r.active = r.active[:j]
}

// advance steps every active edge to the next scanline.
func (r *Rasterizer) advance() {
	edges := r.table.edges
	for _, h := range r.active {
		edges[h].x += edges[h].slope
	}
}

// clipSpan applies the containment rule to [left, right] and clips the
// result to the surface width.
func (r *Rasterizer) clipSpan(left, right float32) (x0, x1 int, ok bool) {
	x0 = pixelEdge(left, r.width)
	x1 = pixelEdge(right, r.width)
	return x0, x1, x0 < x1
}
