package gcanvas

// LinearGradient interpolates between two colors along the line through two
// anchor points.
//
// Pixels before the first anchor get the first color and pixels past the
// second anchor get the second color, exactly. In between, the premultiplied
// channels are interpolated by the projection of the pixel center onto the
// anchor axis in device space. For anchors on one row this is plain
// interpolation across their x extent.
type LinearGradient struct {
	pts    [2]Point
	colors [2]Color

	// Device-space state set by SetContext.
	p0       Point
	axis     Point   // p1 - p0
	invLenSq float32 // 1/|axis|², zero for coincident anchors
	ends     [2]Pixel
	premul   [2][4]float32
}

// NewLinearGradient creates a two-color linear gradient.
func NewLinearGradient(pts [2]Point, colors [2]Color) *LinearGradient {
	return &LinearGradient{pts: pts, colors: colors}
}

// SetContext implements Shader. The anchors are mapped to device space; when
// the transform keeps axes aligned they are also ordered left to right, with
// the colors swapped to match.
func (g *LinearGradient) SetContext(ctm Matrix) bool {
	p0, p1 := ctm.MapPoint(g.pts[0]), ctm.MapPoint(g.pts[1])
	c0, c1 := g.colors[0], g.colors[1]
	if ctm.IsAxisAligned() && p1.X < p0.X {
		p0, p1 = p1, p0
		c0, c1 = c1, c0
	}
	if !finite32(p0.X) || !finite32(p0.Y) || !finite32(p1.X) || !finite32(p1.Y) {
		return false
	}

	g.p0 = p0
	g.axis = p1.Sub(p0)
	g.invLenSq = 0
	if lenSq := g.axis.X*g.axis.X + g.axis.Y*g.axis.Y; lenSq > 0 {
		g.invLenSq = 1 / lenSq
	}
	g.ends = [2]Pixel{c0.Pixel(), c1.Pixel()}
	g.premul = [2][4]float32{premulBytes(c0), premulBytes(c1)}
	return true
}

// ShadeRow implements Shader.
func (g *LinearGradient) ShadeRow(x, y int, row []Pixel) {
	py := float32(y) + 0.5 - g.p0.Y
	for i := range row {
		px := float32(x+i) + 0.5 - g.p0.X
		var t float32
		if g.invLenSq == 0 {
			t = 0
			if px >= 0 {
				t = 1
			}
		} else {
			t = (px*g.axis.X + py*g.axis.Y) * g.invLenSq
		}
		switch {
		case t <= 0:
			row[i] = g.ends[0]
		case t >= 1:
			row[i] = g.ends[1]
		default:
			row[i] = lerpPremul(&g.premul[0], &g.premul[1], t)
		}
	}
}

// premulBytes returns the pinned color as premultiplied floats on the same
// 255.9999 scale Color.Pixel truncates from.
func premulBytes(c Color) [4]float32 {
	c = c.Pin()
	a := c.A * 255.9999
	return [4]float32{a, a * c.R, a * c.G, a * c.B}
}

// lerpPremul interpolates two premultiplied colors and packs the result.
// Interpolating premultiplied values keeps every channel at or below alpha.
func lerpPremul(c0, c1 *[4]float32, t float32) Pixel {
	var out [4]byte
	for k := range out {
		out[k] = byte(c0[k] + (c1[k]-c0[k])*t)
	}
	return PackARGB(out[0], min(out[1], out[0]), min(out[2], out[0]), min(out[3], out[0]))
}
