package gcanvas

import "github.com/chewxy/math32"

// BitmapShader samples a bitmap with nearest-neighbour filtering and
// clamp-to-edge addressing.
//
// The local matrix maps bitmap pixel space into the caller's local space;
// the canvas transform then maps local space to device space. Only
// transforms that keep axes aligned are supported: SetContext returns false
// for rotation, skew or a zero scale. Negative scales mirror the image.
type BitmapShader struct {
	bm    Bitmap
	local Matrix

	// Device-to-bitmap mapping set by SetContext: bx = (x+0.5-tx)*invSX.
	tx, ty       float32
	invSX, invSY float32
}

// NewBitmapShader creates a shader that draws bm through local.
func NewBitmapShader(bm Bitmap, local Matrix) *BitmapShader {
	return &BitmapShader{bm: bm, local: local}
}

// NewBitmapRectShader creates a shader that stretches the whole of bm over
// dst in local space.
func NewBitmapRectShader(bm Bitmap, dst Rect) *BitmapShader {
	var sx, sy float32
	if bm.Width > 0 && bm.Height > 0 {
		sx = dst.Width() / float32(bm.Width)
		sy = dst.Height() / float32(bm.Height)
	}
	return NewBitmapShader(bm, Matrix{
		sx, 0, dst.Left,
		0, sy, dst.Top,
	})
}

// SetContext implements Shader. It also returns false when the bitmap's
// pixels cannot hold its declared size.
func (s *BitmapShader) SetContext(ctm Matrix) bool {
	if s.bm.validate() != nil {
		return false
	}
	m := ctm.Concat(s.local)
	if !m.IsAxisAligned() || m[0] == 0 || m[4] == 0 {
		return false
	}
	s.invSX = 1 / m[0]
	s.invSY = 1 / m[4]
	s.tx = m[2]
	s.ty = m[5]
	return finite32(s.invSX) && finite32(s.invSY) && finite32(s.tx) && finite32(s.ty)
}

// ShadeRow implements Shader.
func (s *BitmapShader) ShadeRow(x, y int, row []Pixel) {
	by := sampleIndex((float32(y)+0.5-s.ty)*s.invSY, s.bm.Height)
	src := s.bm.Row(by)
	for i := range row {
		bx := sampleIndex((float32(x+i)+0.5-s.tx)*s.invSX, s.bm.Width)
		row[i] = src[bx]
	}
}

// sampleIndex floors v and clamps it to [0, n-1].
func sampleIndex(v float32, n int) int {
	f := math32.Floor(v)
	if !(f > 0) { // also catches NaN
		return 0
	}
	if f >= float32(n-1) {
		return n - 1
	}
	return int(f)
}

func finite32(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
