package gcanvas

import "github.com/chewxy/math32"

// RadialGradient blends from an inner color at the center to an outer color
// at the radius and beyond.
//
// The interpolation ratio is min(1, d²/r²), where d is the distance from the
// pixel center to the mapped center. Red, green and blue are interpolated
// straight; alpha is taken from the inner color throughout. The transform
// scales the radius by the length of its mapped x axis.
type RadialGradient struct {
	center Point
	radius float32
	colors [2]Color

	// Device-space state set by SetContext.
	devCenter Point
	invRSq    float32 // zero when the radius collapses
	alpha     float32
	rgb0      [3]float32
	rgbRange  [3]float32
}

// NewRadialGradient creates a two-color radial gradient.
func NewRadialGradient(center Point, radius float32, colors [2]Color) *RadialGradient {
	return &RadialGradient{center: center, radius: radius, colors: colors}
}

// SetContext implements Shader.
func (g *RadialGradient) SetContext(ctm Matrix) bool {
	g.devCenter = ctm.MapPoint(g.center)
	if !finite32(g.devCenter.X) || !finite32(g.devCenter.Y) {
		return false
	}
	r := math32.Abs(g.radius) * ctm.XScale()
	g.invRSq = 0
	if rSq := r * r; rSq > 0 && finite32(rSq) {
		g.invRSq = 1 / rSq
	}

	c0, c1 := g.colors[0].Pin(), g.colors[1].Pin()
	g.alpha = c0.A
	g.rgb0 = [3]float32{c0.R, c0.G, c0.B}
	g.rgbRange = [3]float32{c1.R - c0.R, c1.G - c0.G, c1.B - c0.B}
	return true
}

// ShadeRow implements Shader.
func (g *RadialGradient) ShadeRow(x, y int, row []Pixel) {
	dy := float32(y) + 0.5 - g.devCenter.Y
	for i := range row {
		dx := float32(x+i) + 0.5 - g.devCenter.X
		ratio := float32(1)
		if g.invRSq > 0 {
			ratio = min(1, (dx*dx+dy*dy)*g.invRSq)
		}
		row[i] = ARGB(g.alpha,
			g.rgb0[0]+g.rgbRange[0]*ratio,
			g.rgb0[1]+g.rgbRange[1]*ratio,
			g.rgb0[2]+g.rgbRange[2]*ratio,
		).Pixel()
	}
}
