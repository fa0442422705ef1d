package gcanvas

import (
	"github.com/gogpu/gcanvas/internal/blend"
	"github.com/gogpu/gcanvas/internal/raster"
)

// Clear sets every pixel to c, ignoring the transform and the previous
// contents.
func (c *Canvas) Clear(col Color) {
	col = col.Pin()
	p := blend.Source(col.A, col.R, col.G, col.B)
	for y := 0; y < c.dst.Height; y++ {
		row := c.dst.Row(y)
		for x := range row {
			row[x] = p
		}
	}
}

// FillRect composites col over the pixels whose centers lie inside r after
// it is mapped by the CTM.
func (c *Canvas) FillRect(r Rect, col Color) {
	if !(col.A > 0) {
		skipped("FillRect", "transparent color")
		return
	}
	if r.IsEmpty() {
		skipped("FillRect", "empty rect")
		return
	}
	if c.ctm.IsAxisAligned() {
		d := c.ctm.MapRect(r)
		x0, y0, x1, y1, ok := raster.RectSpans(d.Left, d.Top, d.Right, d.Bottom, c.dst.Width, c.dst.Height)
		if !ok {
			return
		}
		for y := y0; y < y1; y++ {
			blend.FillRow(c.dst.Row(y)[x0:x1], col.A, col.R, col.G, col.B)
		}
		return
	}
	q := r.Quad()
	c.fillConvex(q[:], col)
}

// FillConvexPolygon composites col over the convex polygon pts. Fewer than
// three points draws nothing.
func (c *Canvas) FillConvexPolygon(pts []Point, col Color) {
	if !(col.A > 0) {
		skipped("FillConvexPolygon", "transparent color")
		return
	}
	if len(pts) < 3 {
		skipped("FillConvexPolygon", "fewer than 3 points")
		return
	}
	c.fillConvex(pts, col)
}

func (c *Canvas) fillConvex(pts []Point, col Color) {
	c.rast.FillConvex(c.mapPoints(pts), func(y, x0, x1 int) {
		blend.FillRow(c.dst.Row(y)[x0:x1], col.A, col.R, col.G, col.B)
	})
}

// ShadeRect composites the output of s over the pixels of r.
func (c *Canvas) ShadeRect(r Rect, s Shader) {
	if r.IsEmpty() {
		skipped("ShadeRect", "empty rect")
		return
	}
	if !s.SetContext(c.ctm) {
		skipped("ShadeRect", "shader rejected transform")
		return
	}
	c.shadeRect(r, s)
}

// shadeRect draws r with a shader whose context is already set.
func (c *Canvas) shadeRect(r Rect, s Shader) {
	if c.ctm.IsAxisAligned() {
		d := c.ctm.MapRect(r)
		x0, y0, x1, y1, ok := raster.RectSpans(d.Left, d.Top, d.Right, d.Bottom, c.dst.Width, c.dst.Height)
		if !ok {
			return
		}
		for y := y0; y < y1; y++ {
			c.shadeSpan(s, y, x0, x1)
		}
		return
	}
	q := r.Quad()
	c.shadeConvex(q[:], s)
}

// ShadeConvexPolygon composites the output of s over the convex polygon
// pts. Fewer than three points draws nothing.
func (c *Canvas) ShadeConvexPolygon(pts []Point, s Shader) {
	if len(pts) < 3 {
		skipped("ShadeConvexPolygon", "fewer than 3 points")
		return
	}
	if !s.SetContext(c.ctm) {
		skipped("ShadeConvexPolygon", "shader rejected transform")
		return
	}
	c.shadeConvex(pts, s)
}

func (c *Canvas) shadeConvex(pts []Point, s Shader) {
	c.rast.FillConvex(c.mapPoints(pts), func(y, x0, x1 int) {
		c.shadeSpan(s, y, x0, x1)
	})
}

// shadeSpan asks s for the pixels of [x0,x1) on row y and blends them.
func (c *Canvas) shadeSpan(s Shader, y, x0, x1 int) {
	src := c.row[:x1-x0]
	s.ShadeRow(x0, y, src)
	blend.SourceOverRow(c.dst.Row(y)[x0:x1], src)
}

// FillBitmapRect draws the whole of bm stretched over dst, sampling with
// nearest-neighbour filtering.
//
// Axis-aligned transforms (including flips) sample through a BitmapShader.
// Under rotation or skew each source pixel is mapped forward as its own
// quad, so no matrix inverse is needed.
func (c *Canvas) FillBitmapRect(bm Bitmap, dst Rect) {
	if err := bm.validate(); err != nil {
		skipped("FillBitmapRect", err.Error())
		return
	}
	if dst.IsEmpty() {
		skipped("FillBitmapRect", "empty rect")
		return
	}
	if s := NewBitmapRectShader(bm, dst); s.SetContext(c.ctm) {
		c.shadeRect(dst, s)
		return
	}
	c.forwardMapBitmap(bm, dst)
}

func (c *Canvas) forwardMapBitmap(bm Bitmap, dst Rect) {
	cw := dst.Width() / float32(bm.Width)
	ch := dst.Height() / float32(bm.Height)
	for j := 0; j < bm.Height; j++ {
		src := bm.Row(j)
		top := dst.Top + float32(j)*ch
		for i, p := range src {
			if p.A() == 0 {
				continue
			}
			left := dst.Left + float32(i)*cw
			q := RectLTRB(left, top, left+cw, top+ch).Quad()
			c.rast.FillConvex(c.mapPoints(q[:]), func(y, x0, x1 int) {
				row := c.dst.Row(y)[x0:x1]
				for k := range row {
					row[k] = blend.SourceOverPixel(row[k], p)
				}
			})
		}
	}
}

func skipped(op, reason string) {
	Logger().Debug("gcanvas: draw skipped", "op", op, "reason", reason)
}
