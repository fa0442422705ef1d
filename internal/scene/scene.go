// Package scene decodes TOML scene descriptions and replays them onto a
// gcanvas.Canvas.
//
// A scene looks like:
//
//	width = 64
//	height = 64
//	background = [1, 1, 1, 1]   # a, r, g, b
//
//	[bitmaps]
//	logo = "logo.png"           # relative to the scene file
//
//	[[op]]
//	kind = "rect"
//	rect = [8, 8, 56, 56]       # left, top, right, bottom
//	color = [1, 0.2, 0.4, 0.8]
//
//	[[op]]
//	kind = "stroke"
//	points = [[8, 8], [56, 56]]
//	width = 3
//	shader = { kind = "linear", points = [[8, 8], [56, 56]], colors = [[1, 1, 0, 0], [1, 0, 0, 1]] }
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("scene: invalid")

// Op kinds.
const (
	KindClear        = "clear"
	KindRect         = "rect"
	KindPolygon      = "polygon"
	KindBitmap       = "bitmap"
	KindShadeRect    = "shade_rect"
	KindShadePolygon = "shade_polygon"
	KindStroke       = "stroke"
	KindSave         = "save"
	KindRestore      = "restore"
	KindConcat       = "concat"
	KindTranslate    = "translate"
	KindScale        = "scale"
	KindRotate       = "rotate"
)

// Shader kinds.
const (
	ShaderColor  = "color"
	ShaderBitmap = "bitmap"
	ShaderLinear = "linear"
	ShaderRadial = "radial"
)

// Scene is a decoded scene file.
type Scene struct {
	Width      int               `toml:"width"`
	Height     int               `toml:"height"`
	Background []float32         `toml:"background"`
	Bitmaps    map[string]string `toml:"bitmaps"`
	Ops        []Op              `toml:"op"`

	// Dir resolves relative bitmap paths. Load sets it to the directory of
	// the scene file.
	Dir string `toml:"-"`
}

// Op is one drawing or transform step. Which fields are used depends on
// Kind.
type Op struct {
	Kind string `toml:"kind"`

	Rect   []float32   `toml:"rect"`
	Points [][]float32 `toml:"points"`
	Color  []float32   `toml:"color"`
	Bitmap string      `toml:"bitmap"`
	Shader *Shader     `toml:"shader"`

	// Stroke parameters.
	Closed     bool    `toml:"closed"`
	Width      float32 `toml:"width"`
	MiterLimit float32 `toml:"miter_limit"`
	Cap        bool    `toml:"cap"`

	// Transform parameters. Angle is in degrees.
	Matrix []float32 `toml:"matrix"`
	X      float32   `toml:"x"`
	Y      float32   `toml:"y"`
	Angle  float32   `toml:"angle"`
}

// Shader describes a shader for shade_*, stroke and bitmap ops.
type Shader struct {
	Kind   string      `toml:"kind"`
	Color  []float32   `toml:"color"`
	Bitmap string      `toml:"bitmap"`
	Matrix []float32   `toml:"matrix"`
	Rect   []float32   `toml:"rect"`
	Points [][]float32 `toml:"points"`
	Colors [][]float32 `toml:"colors"`
	Center []float32   `toml:"center"`
	Radius float32     `toml:"radius"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Decode reads and validates a scene. Unknown keys are rejected.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks sizes, op kinds and vector lengths.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, s.Width, s.Height)
	}
	if s.Background != nil && len(s.Background) != 4 {
		return fmt.Errorf("%w: background needs 4 components, got %d", ErrInvalid, len(s.Background))
	}
	for i := range s.Ops {
		if err := s.validateOp(&s.Ops[i]); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, s.Ops[i].Kind, err)
		}
	}
	return nil
}

func (s *Scene) validateOp(op *Op) error {
	switch op.Kind {
	case KindClear:
		return wantLen("color", op.Color, 4)
	case KindRect:
		return errors.Join(wantLen("rect", op.Rect, 4), wantLen("color", op.Color, 4))
	case KindPolygon:
		return errors.Join(wantPoints("points", op.Points), wantLen("color", op.Color, 4))
	case KindBitmap:
		return errors.Join(wantLen("rect", op.Rect, 4), s.wantBitmap(op.Bitmap))
	case KindShadeRect:
		return errors.Join(wantLen("rect", op.Rect, 4), s.validateShader(op.Shader))
	case KindShadePolygon:
		return errors.Join(wantPoints("points", op.Points), s.validateShader(op.Shader))
	case KindStroke:
		var paint error
		switch {
		case op.Shader != nil:
			paint = s.validateShader(op.Shader)
		default:
			paint = wantLen("color", op.Color, 4)
		}
		return errors.Join(wantPoints("points", op.Points), paint)
	case KindConcat:
		return wantLen("matrix", op.Matrix, 6)
	case KindSave, KindRestore, KindTranslate, KindScale, KindRotate:
		return nil
	}
	return fmt.Errorf("%w: unknown op kind %q", ErrInvalid, op.Kind)
}

func (s *Scene) validateShader(sh *Shader) error {
	if sh == nil {
		return fmt.Errorf("%w: missing shader", ErrInvalid)
	}
	switch sh.Kind {
	case ShaderColor:
		return wantLen("shader.color", sh.Color, 4)
	case ShaderBitmap:
		err := s.wantBitmap(sh.Bitmap)
		if sh.Matrix != nil {
			err = errors.Join(err, wantLen("shader.matrix", sh.Matrix, 6))
		}
		if sh.Rect != nil {
			err = errors.Join(err, wantLen("shader.rect", sh.Rect, 4))
		}
		return err
	case ShaderLinear:
		err := wantColors(sh.Colors)
		if len(sh.Points) != 2 {
			return errors.Join(err, fmt.Errorf("%w: shader.points needs 2 points, got %d", ErrInvalid, len(sh.Points)))
		}
		return errors.Join(err, wantPoints("shader.points", sh.Points))
	case ShaderRadial:
		return errors.Join(wantLen("shader.center", sh.Center, 2), wantColors(sh.Colors))
	}
	return fmt.Errorf("%w: unknown shader kind %q", ErrInvalid, sh.Kind)
}

func (s *Scene) wantBitmap(name string) error {
	if _, ok := s.Bitmaps[name]; !ok {
		return fmt.Errorf("%w: unknown bitmap %q", ErrInvalid, name)
	}
	return nil
}

func wantLen(field string, v []float32, n int) error {
	if len(v) != n {
		return fmt.Errorf("%w: %s needs %d values, got %d", ErrInvalid, field, n, len(v))
	}
	return nil
}

// wantPoints checks that every point has two coordinates. Short point
// lists are left to the canvas, which ignores them.
func wantPoints(field string, pts [][]float32) error {
	for i, p := range pts {
		if len(p) != 2 {
			return fmt.Errorf("%w: %s[%d] needs 2 values, got %d", ErrInvalid, field, i, len(p))
		}
	}
	return nil
}

func wantColors(colors [][]float32) error {
	if len(colors) != 2 {
		return fmt.Errorf("%w: shader.colors needs 2 colors, got %d", ErrInvalid, len(colors))
	}
	for i, c := range colors {
		if err := wantLen(fmt.Sprintf("shader.colors[%d]", i), c, 4); err != nil {
			return err
		}
	}
	return nil
}
