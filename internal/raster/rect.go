// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/chewxy/math32"

// RectSpans is the axis-aligned rectangle fast path. It applies the same
// containment rule as FillConvex without building an edge table and returns
// the covered pixel box [x0,x1)x[y0,y1), clipped to the surface.
func RectSpans(left, top, right, bottom float32, width, height int) (x0, y0, x1, y1 int, ok bool) {
	if !finite(left) || !finite(top) || !finite(right) || !finite(bottom) {
		return 0, 0, 0, 0, false
	}
	x0 = pixelEdge(left, width)
	x1 = pixelEdge(right, width)
	y0 = pixelEdge(top, height)
	y1 = pixelEdge(bottom, height)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

// pixelEdge converts a coordinate to the first pixel index whose center lies
// at or beyond it, clamped to [0, limit].
func pixelEdge(v float32, limit int) int {
	f := math32.Floor(v + 0.5)
	if f <= 0 {
		return 0
	}
	if f >= float32(limit) {
		return limit
	}
	return int(f)
}
