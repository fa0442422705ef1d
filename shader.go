package gcanvas

// Shader produces the source pixels for a fill.
//
// A canvas binds a shader to each draw call by calling SetContext with the
// current transform. If SetContext returns false the shader cannot render
// under that transform and the draw is skipped; ShadeRow is never called.
// Otherwise ShadeRow is called once per covered span with the device-space
// start (x, y); the shader writes len(row) premultiplied pixels for
// [x, x+len(row)) on row y. The canvas then blends them SRC-OVER.
//
// Shaders are owned by the caller and may be reused across draw calls and
// canvases, but not concurrently.
type Shader interface {
	SetContext(ctm Matrix) bool
	ShadeRow(x, y int, row []Pixel)
}

// ColorShader fills every pixel with one color.
type ColorShader struct {
	pixel Pixel
}

// NewColorShader creates a shader for a single color. The color is pinned
// to [0,1] and premultiplied once, here.
func NewColorShader(c Color) *ColorShader {
	return &ColorShader{pixel: c.Pixel()}
}

// Pixel returns the premultiplied pixel the shader writes.
func (s *ColorShader) Pixel() Pixel { return s.pixel }

// SetContext implements Shader. A single color ignores the transform.
func (s *ColorShader) SetContext(Matrix) bool { return true }

// ShadeRow implements Shader.
func (s *ColorShader) ShadeRow(_, _ int, row []Pixel) {
	for i := range row {
		row[i] = s.pixel
	}
}
