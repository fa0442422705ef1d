package gcanvas

import (
	"errors"
	"math"
	"testing"
)

// newTestCanvas returns a canvas over a fresh transparent bitmap.
func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(NewBitmap(w, h))
	if err != nil {
		t.Fatalf("New(%dx%d) error = %v", w, h, err)
	}
	return c
}

// fillBitmap sets every pixel of bm to p.
func fillBitmap(bm Bitmap, p Pixel) {
	for y := 0; y < bm.Height; y++ {
		row := bm.Row(y)
		for x := range row {
			row[x] = p
		}
	}
}

// snapshot copies the visible pixels of bm.
func snapshot(bm Bitmap) []Pixel {
	out := make([]Pixel, 0, bm.Width*bm.Height)
	for y := 0; y < bm.Height; y++ {
		out = append(out, bm.Row(y)...)
	}
	return out
}

func assertUnchanged(t *testing.T, before []Pixel, bm Bitmap) {
	t.Helper()
	after := snapshot(bm)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("pixel (%d,%d) changed: %#08x -> %#08x",
				i%bm.Width, i/bm.Width, uint32(before[i]), uint32(after[i]))
		}
	}
}

func TestNew_InvalidBitmap(t *testing.T) {
	tests := []struct {
		name string
		bm   Bitmap
	}{
		{"zero width", Bitmap{Width: 0, Height: 2, RowBytes: 0}},
		{"zero height", Bitmap{Width: 2, Height: 0, RowBytes: 8, Pixels: make([]Pixel, 4)}},
		{"negative width", Bitmap{Width: -1, Height: 2, RowBytes: 8, Pixels: make([]Pixel, 4)}},
		{"short stride", Bitmap{Width: 4, Height: 2, RowBytes: 12, Pixels: make([]Pixel, 8)}},
		{"unaligned stride", Bitmap{Width: 2, Height: 2, RowBytes: 10, Pixels: make([]Pixel, 8)}},
		{"short pixels", Bitmap{Width: 2, Height: 2, RowBytes: 8, Pixels: make([]Pixel, 3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.bm)
			if c != nil {
				t.Error("New() returned a canvas for an invalid bitmap")
			}
			if !errors.Is(err, ErrInvalidBitmap) {
				t.Errorf("New() error = %v, want ErrInvalidBitmap", err)
			}
		})
	}
}

func TestNew_PaddedStride(t *testing.T) {
	bm := Bitmap{Width: 2, Height: 2, RowBytes: 16, Pixels: make([]Pixel, 6)}
	c, err := New(bm)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.Clear(White)
	want := White.Pixel()
	for i, p := range bm.Pixels {
		x := i % 4
		if x < 2 && p != want {
			t.Errorf("pixel %d = %#08x, want %#08x", i, uint32(p), uint32(want))
		}
		if x >= 2 && p != 0 {
			t.Errorf("padding pixel %d = %#08x, want untouched", i, uint32(p))
		}
	}
}

func TestClear(t *testing.T) {
	colors := []Color{
		Transparent,
		Red,
		ARGB(0.5, 0.2, 0.4, 0.6),
		ARGB(2, -1, 0.5, 3),
	}
	for _, col := range colors {
		c := newTestCanvas(t, 5, 4)
		fillBitmap(c.Bitmap(), PackARGB(0x80, 0x10, 0x20, 0x30))
		c.Translate(100, 100)
		c.Clear(col)

		want := col.Pixel()
		for i, p := range snapshot(c.Bitmap()) {
			if p != want {
				t.Fatalf("Clear(%+v): pixel %d = %#08x, want %#08x", col, i, uint32(p), uint32(want))
			}
		}
	}
}

func TestFillRect_CenterContainment(t *testing.T) {
	c := newTestCanvas(t, 3, 3)
	c.FillRect(RectLTRB(1, 1, 2, 2), Red)
	c.FillRect(RectLTRB(1, 1, 2, 2), Red)

	bm := c.Bitmap()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Pixel(0)
			if x == 1 && y == 1 {
				want = PackARGB(0xFF, 0xFF, 0, 0)
			}
			if got := bm.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestFillRect_NoOps(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		col  Color
	}{
		{"zero alpha", RectLTRB(0, 0, 4, 4), ARGB(0, 1, 0, 0)},
		{"negative alpha", RectLTRB(0, 0, 4, 4), ARGB(-0.5, 1, 0, 0)},
		{"NaN alpha", RectLTRB(0, 0, 4, 4), ARGB(float32(math.NaN()), 1, 0, 0)},
		{"empty", RectLTRB(1, 1, 1, 3), Red},
		{"inverted", RectLTRB(3, 3, 1, 1), Red},
		{"sub-pixel", RectLTRB(1.1, 1.1, 1.4, 1.4), Red},
		{"off surface", RectLTRB(10, 10, 20, 20), Red},
		{"left of surface", RectLTRB(-10, 0, -1, 4), Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 4, 4)
			fillBitmap(c.Bitmap(), PackARGB(0x40, 0x10, 0x20, 0x30))
			before := snapshot(c.Bitmap())
			c.FillRect(tt.r, tt.col)
			assertUnchanged(t, before, c.Bitmap())
		})
	}
}

func TestFillRect_ClipsToSurface(t *testing.T) {
	c := newTestCanvas(t, 4, 4)
	c.FillRect(RectLTRB(-5, 2, 50, 50), Blue)
	bm := c.Bitmap()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			covered := bm.At(x, y) != 0
			if covered != (y >= 2) {
				t.Errorf("At(%d,%d) covered = %v, want %v", x, y, covered, y >= 2)
			}
		}
	}
}

func TestFillRect_RotatedMatchesPolygon(t *testing.T) {
	a := newTestCanvas(t, 20, 20)
	b := newTestCanvas(t, 20, 20)
	for _, c := range []*Canvas{a, b} {
		c.Translate(10, 10)
		c.Rotate(math.Pi / 6)
	}
	r := RectLTRB(-4, -3, 4, 3)
	a.FillRect(r, Green)
	q := r.Quad()
	b.FillConvexPolygon(q[:], Green)

	got, want := snapshot(a.Bitmap()), snapshot(b.Bitmap())
	covered := 0
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("pixel %d: FillRect %#08x, polygon %#08x", i, uint32(got[i]), uint32(want[i]))
		}
		if got[i] != 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("rotated rect covered no pixels")
	}
}

func TestFillRect_FlippedTransform(t *testing.T) {
	c := newTestCanvas(t, 4, 4)
	c.Translate(4, 0)
	c.Scale(-1, 1)
	c.FillRect(RectLTRB(0, 0, 1, 4), Red)

	bm := c.Bitmap()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			covered := bm.At(x, y) != 0
			if covered != (x == 3) {
				t.Errorf("At(%d,%d) covered = %v, want %v", x, y, covered, x == 3)
			}
		}
	}
}

func TestFillConvexPolygon_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"nil", nil},
		{"empty", []Point{}},
		{"one point", []Point{{1, 1}}},
		{"two points", []Point{{0, 0}, {4, 4}}},
		{"outside", []Point{{10, 10}, {20, 10}, {15, 20}}},
		{"above", []Point{{0, -10}, {4, -10}, {2, -5}}},
		{"horizontal line", []Point{{0, 2}, {2, 2}, {4, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 4, 4)
			fillBitmap(c.Bitmap(), PackARGB(0xFF, 1, 2, 3))
			before := snapshot(c.Bitmap())
			c.FillConvexPolygon(tt.pts, Red)
			c.ShadeConvexPolygon(tt.pts, NewColorShader(Red))
			assertUnchanged(t, before, c.Bitmap())
		})
	}
}

func TestFillConvexPolygon_Square(t *testing.T) {
	c := newTestCanvas(t, 6, 6)
	c.FillConvexPolygon([]Point{{1, 1}, {4, 1}, {4, 3}, {1, 3}}, White)
	bm := c.Bitmap()
	count := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			in := x >= 1 && x < 4 && y >= 1 && y < 3
			if covered := bm.At(x, y) != 0; covered != in {
				t.Errorf("At(%d,%d) covered = %v, want %v", x, y, covered, in)
			}
			if bm.At(x, y) != 0 {
				count++
			}
		}
	}
	if count != 6 {
		t.Errorf("covered %d pixels, want 6", count)
	}
}

func TestFillBitmapRect_Identity(t *testing.T) {
	src := NewBitmap(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, PackARGB(0xFF, byte(x*60), byte(y*100), byte(x+y)))
		}
	}

	c := newTestCanvas(t, 4, 3)
	c.FillBitmapRect(src, RectXYWH(0, 0, 4, 3))

	dst := c.Bitmap()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got, want := dst.At(x, y), src.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestFillBitmapRect_ShrinkToCenter(t *testing.T) {
	src := NewBitmap(3, 3)
	fillBitmap(src, PackARGB(0xFF, 0, 0, 0xFF))
	center := PackARGB(0xFF, 0xFF, 0, 0)
	src.Set(1, 1, center)

	c := newTestCanvas(t, 3, 3)
	c.FillBitmapRect(src, RectLTRB(1, 1, 2, 2))

	dst := c.Bitmap()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Pixel(0)
			if x == 1 && y == 1 {
				want = center
			}
			if got := dst.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestFillBitmapRect_Mirrored(t *testing.T) {
	src := NewBitmap(3, 1)
	for x := 0; x < 3; x++ {
		src.Set(x, 0, PackARGB(0xFF, byte(x+1), 0, 0))
	}
	c := newTestCanvas(t, 3, 1)
	c.Translate(3, 0)
	c.Scale(-1, 1)
	c.FillBitmapRect(src, RectXYWH(0, 0, 3, 1))

	dst := c.Bitmap()
	for x := 0; x < 3; x++ {
		if got, want := dst.At(x, 0), src.At(2-x, 0); got != want {
			t.Errorf("At(%d,0) = %#08x, want %#08x", x, uint32(got), uint32(want))
		}
	}
}

func TestFillBitmapRect_RotatedForwardMap(t *testing.T) {
	a := PackARGB(0xFF, 0xFF, 0, 0)
	b := PackARGB(0xFF, 0, 0xFF, 0)
	cc := PackARGB(0xFF, 0, 0, 0xFF)
	d := PackARGB(0xFF, 0xFF, 0xFF, 0xFF)
	src := NewBitmap(2, 2)
	src.Set(0, 0, a)
	src.Set(1, 0, b)
	src.Set(0, 1, cc)
	src.Set(1, 1, d)

	c := newTestCanvas(t, 2, 2)
	c.Translate(2, 0)
	c.Rotate(math.Pi / 2)
	c.FillBitmapRect(src, RectXYWH(0, 0, 2, 2))

	// (x, y) maps to (2-y, x).
	dst := c.Bitmap()
	want := map[[2]int]Pixel{
		{1, 0}: a,
		{1, 1}: b,
		{0, 0}: cc,
		{0, 1}: d,
	}
	for pos, p := range want {
		if got := dst.At(pos[0], pos[1]); got != p {
			t.Errorf("At(%d,%d) = %#08x, want %#08x", pos[0], pos[1], uint32(got), uint32(p))
		}
	}
}

func TestFillBitmapRect_EmptyInputs(t *testing.T) {
	c := newTestCanvas(t, 3, 3)
	before := snapshot(c.Bitmap())
	c.FillBitmapRect(Bitmap{}, RectXYWH(0, 0, 3, 3))
	src := NewBitmap(2, 2)
	fillBitmap(src, White.Pixel())
	c.FillBitmapRect(src, RectLTRB(2, 2, 1, 1))
	assertUnchanged(t, before, c.Bitmap())
}

func TestFillBitmapRect_MalformedSource(t *testing.T) {
	short := Bitmap{Width: 4, Height: 4, RowBytes: 16, Pixels: make([]Pixel, 2)}
	tests := []struct {
		name string
		draw func(c *Canvas)
	}{
		{"fill", func(c *Canvas) { c.FillBitmapRect(short, RectXYWH(0, 0, 4, 4)) }},
		{"fill rotated", func(c *Canvas) {
			c.Rotate(0.5)
			c.FillBitmapRect(short, RectXYWH(0, 0, 4, 4))
		}},
		{"shade", func(c *Canvas) {
			c.ShadeRect(RectXYWH(0, 0, 4, 4), NewBitmapShader(short, Identity()))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 4, 4)
			before := snapshot(c.Bitmap())
			tt.draw(c)
			assertUnchanged(t, before, c.Bitmap())
		})
	}
}

func TestSaveConcatRestore(t *testing.T) {
	mats := []Matrix{
		Identity(),
		Translate(3.25, -7.5),
		Scale(0.1, 33),
		Rotate(1.234),
		{1.5, 0.3, -2, 0.7, 0.9, 11},
		{float32(math.Inf(1)), 0, 0, 0, 1, 0},
	}
	for _, m := range mats {
		c := newTestCanvas(t, 1, 1)
		c.Translate(1.1, 2.2)
		c.Rotate(0.3)
		before := c.CTM()

		c.Save()
		c.Concat(m)
		c.Restore()

		if got := c.CTM(); got != before {
			t.Errorf("after Save/Concat(%v)/Restore CTM = %v, want %v", m, got, before)
		}
		if c.SaveCount() != 0 {
			t.Errorf("SaveCount() = %d, want 0", c.SaveCount())
		}
	}
}

func TestRestore_Nested(t *testing.T) {
	c := newTestCanvas(t, 1, 1)
	c.Save()
	c.Translate(1, 0)
	c.Save()
	c.Scale(2, 2)
	if c.SaveCount() != 2 {
		t.Fatalf("SaveCount() = %d, want 2", c.SaveCount())
	}
	c.Restore()
	if got, want := c.CTM(), Translate(1, 0); got != want {
		t.Errorf("CTM() = %v, want %v", got, want)
	}
	c.Restore()
	if !c.CTM().IsIdentity() {
		t.Errorf("CTM() = %v, want identity", c.CTM())
	}
}

func TestRestore_EmptyStackIsNoOp(t *testing.T) {
	c := newTestCanvas(t, 1, 1)
	c.Scale(3, 4)
	want := c.CTM()
	c.Restore()
	c.Restore()
	if got := c.CTM(); got != want {
		t.Errorf("CTM() = %v, want %v", got, want)
	}
}

func TestConcatOrder(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	c.Translate(5, 0)
	c.Scale(2, 2)
	got := c.CTM().MapPoint(Pt(1, 1))
	if got != Pt(7, 2) {
		t.Errorf("MapPoint(1,1) = %v, want (7,2)", got)
	}
}

func TestSequentialSourceOver(t *testing.T) {
	c := newTestCanvas(t, 1, 1)
	c.FillRect(RectXYWH(0, 0, 1, 1), Red)
	c.FillRect(RectXYWH(0, 0, 1, 1), ARGB(0.5, 0, 0, 1))

	// over(Red, half blue): outA = 1, outR = outB = 255*0.5, rounded up.
	want := PackARGB(0xFF, 128, 0, 128)
	if got := c.Bitmap().At(0, 0); got != want {
		t.Errorf("At(0,0) = %#08x, want %#08x", uint32(got), uint32(want))
	}
}

func TestSequentialSourceOver_MatchesReference(t *testing.T) {
	c1 := ARGB(0.6, 0.9, 0.3, 0.1)
	c2 := ARGB(0.25, 0.2, 0.8, 0.5)

	c := newTestCanvas(t, 1, 1)
	c.FillRect(RectXYWH(0, 0, 1, 1), c1)
	c.FillRect(RectXYWH(0, 0, 1, 1), c2)
	got := c.Bitmap().At(0, 0)

	want := referenceOver(referenceOver(0, c1), c2)
	for i, pair := range [][2]byte{{got.A(), want.A()}, {got.R(), want.R()}, {got.G(), want.G()}, {got.B(), want.B()}} {
		if diff := int(pair[0]) - int(pair[1]); diff < -1 || diff > 1 {
			t.Errorf("channel %d = %d, want %d", i, pair[0], pair[1])
		}
	}
}

// referenceOver is the textbook straight-alpha Porter-Duff over, in float64.
func referenceOver(dst Pixel, c Color) Pixel {
	da := float64(dst.A()) / 255
	unpre := func(v byte) float64 {
		if da == 0 {
			return 0
		}
		return float64(v) / 255 / da
	}
	sa := float64(c.A)
	outA := sa + da*(1-sa)
	ch := func(s float64, d byte) byte {
		out := (s*sa + unpre(d)*da*(1-sa)) / outA
		return byte(math.Round(out * outA * 255))
	}
	return PackARGB(byte(math.Round(outA*255)),
		ch(float64(c.R), dst.R()),
		ch(float64(c.G), dst.G()),
		ch(float64(c.B), dst.B()))
}

func TestShadeRect_RejectedShaderSkips(t *testing.T) {
	src := NewBitmap(2, 2)
	fillBitmap(src, White.Pixel())
	c := newTestCanvas(t, 4, 4)
	c.Rotate(0.5)
	before := snapshot(c.Bitmap())
	c.ShadeRect(RectXYWH(0, 0, 4, 4), NewBitmapRectShader(src, RectXYWH(0, 0, 4, 4)))
	assertUnchanged(t, before, c.Bitmap())
}

func TestShadeRect_Color(t *testing.T) {
	a := newTestCanvas(t, 5, 5)
	b := newTestCanvas(t, 5, 5)
	col := ARGB(0.5, 0.25, 0.5, 1)
	a.ShadeRect(RectLTRB(1, 0, 4, 3), NewColorShader(col))
	b.FillRect(RectLTRB(1, 0, 4, 3), col)

	// Both paths blend the same color; the shader path goes through its
	// premultiplied pixel, so allow one step of rounding.
	pa, pb := a.Bitmap().At(2, 1), b.Bitmap().At(2, 1)
	if pa == 0 || pb == 0 {
		t.Fatal("rect not drawn")
	}
	if d := int(pa.A()) - int(pb.A()); d < -1 || d > 1 {
		t.Errorf("alpha %d vs %d", pa.A(), pb.A())
	}
	if a.Bitmap().At(0, 0) != 0 || a.Bitmap().At(4, 4) != 0 {
		t.Error("ShadeRect drew outside the rect")
	}
}
