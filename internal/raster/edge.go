// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/chewxy/math32"

// Point is a device-space point (internal copy to avoid import cycle).
type Point struct {
	X, Y float32
}

// noEdge terminates a bucket chain.
const noEdge int32 = -1

// maxRow bounds device rows; float32 has no integer precision beyond 2^24.
const maxRow = 1 << 24

// edge is one non-horizontal side of a polygon.
//
// x starts at the rounded x of the upper (smaller y) endpoint and advances by
// slope once per scanline. The edge retires on row yMax.
type edge struct {
	x     float32
	slope float32 // dx/dy
	yMax  int
	next  int32 // next edge in the same bucket, or noEdge
}

// nextX is the x this edge will have on the following scanline.
func (e *edge) nextX() float32 { return e.x + e.slope }

// less orders edges by current x, breaking ties by the x on the next
// scanline so the edge heading left sorts first.
func (e *edge) less(o *edge) bool {
	if e.x != o.x {
		return e.x < o.x
	}
	return e.nextX() < o.nextX()
}

// EdgeTable buckets polygon edges by the row on which they start.
//
// Edges live in a single arena and buckets hold handles into it, so building
// a table does not allocate per edge. A table is rebuilt for every polygon;
// only its backing storage is reused.
type EdgeTable struct {
	edges   []edge
	buckets []int32 // head handle per row, offset by yMin
	yMin    int
	yMax    int
}

// Build fills the table from a closed polygon. Only rows [0, lastRow] are
// swept: edges ending above row 0 or starting below lastRow are dropped, and
// an edge starting above row 0 is bucketed at row 0 with its x advanced to
// that row. It returns false when there is nothing to sweep.
func (t *EdgeTable) Build(pts []Point, lastRow int) bool {
	t.edges = t.edges[:0]
	if len(pts) < 3 {
		return false
	}
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			return false
		}
	}

	yMin, yMax := roundRow(pts[0].Y), roundRow(pts[0].Y)
	for _, p := range pts[1:] {
		y := roundRow(p.Y)
		yMin = min(yMin, y)
		yMax = max(yMax, y)
	}
	if yMin > lastRow || yMax <= 0 {
		return false
	}
	t.yMin = max(yMin, 0)
	t.yMax = min(yMax, lastRow)

	size := t.yMax - t.yMin + 1
	if cap(t.buckets) < size {
		t.buckets = make([]int32, size)
	}
	t.buckets = t.buckets[:size]
	for i := range t.buckets {
		t.buckets[i] = noEdge
	}

	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		dy := b.Y - a.Y
		if dy == 0 {
			continue
		}
		top, bottom := a, b
		if a.Y > b.Y {
			top, bottom = b, a
		}
		last := roundRow(bottom.Y)
		row := roundRow(top.Y)
		if last <= t.yMin || row > t.yMax {
			continue
		}
		slope := (b.X - a.X) / dy
		x := math32.Round(top.X)
		if row < t.yMin {
			// Jump straight to the first swept row. The unclamped top row
			// keeps the slope exact for vertices far above the surface.
			skip := float64(t.yMin) - float64(math32.Round(top.Y))
			x = float32(float64(x) + float64(slope)*skip)
			row = t.yMin
		}
		slot := row - t.yMin
		t.edges = append(t.edges, edge{
			x:     x,
			slope: slope,
			yMax:  last,
			next:  t.buckets[slot],
		})
		t.buckets[slot] = int32(len(t.edges) - 1)
	}
	return len(t.edges) > 0
}

// YRange returns the first and last rows swept for the table.
func (t *EdgeTable) YRange() (yMin, yMax int) {
	return t.yMin, t.yMax
}

// Len returns the number of edges in the table.
func (t *EdgeTable) Len() int {
	return len(t.edges)
}

// head returns the first edge handle bucketed at row y.
func (t *EdgeTable) head(y int) int32 {
	if y < t.yMin || y > t.yMax {
		return noEdge
	}
	return t.buckets[y-t.yMin]
}

// roundRow rounds y to the nearest row, clamped to ±maxRow so the result
// always fits an int.
func roundRow(y float32) int {
	r := math32.Round(y)
	if r < -maxRow {
		return -maxRow
	}
	if r > maxRow {
		return maxRow
	}
	return int(r)
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
