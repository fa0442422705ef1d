package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/chewxy/math32"
	"github.com/gogpu/gcanvas"
	"github.com/gogpu/gcanvas/internal/cache"
	"golang.org/x/image/math/f32"
)

// fileKey identifies one version of a file on disk.
type fileKey struct {
	path    string
	size    int64
	modTime time.Time
}

// BitmapCache keeps decoded bitmaps between renders. An entry is reused
// while the file's size and modification time are unchanged; once a file
// changes its old decoded bitmap is dropped.
type BitmapCache struct {
	c *cache.Cache[fileKey, gcanvas.Bitmap]

	mu     sync.Mutex
	latest map[string]fileKey
}

// NewBitmapCache creates a cache holding at most limit bitmaps.
func NewBitmapCache(limit int) *BitmapCache {
	return &BitmapCache{
		c:      cache.New[fileKey, gcanvas.Bitmap](limit),
		latest: make(map[string]fileKey),
	}
}

// Len returns the number of cached bitmaps.
func (bc *BitmapCache) Len() int {
	return bc.c.Len()
}

func (bc *BitmapCache) load(path string) (gcanvas.Bitmap, error) {
	if bc == nil {
		return decodeBitmap(fileKey{path: path})
	}
	fi, err := os.Stat(path)
	if err != nil {
		return gcanvas.Bitmap{}, err
	}
	key := fileKey{path: path, size: fi.Size(), modTime: fi.ModTime()}

	bc.mu.Lock()
	if old, ok := bc.latest[path]; ok && old != key {
		bc.c.Delete(old)
	}
	bc.latest[path] = key
	bc.mu.Unlock()

	return bc.c.GetOrLoad(key, decodeBitmap)
}

func decodeBitmap(k fileKey) (gcanvas.Bitmap, error) {
	img, err := imgio.Open(k.path)
	if err != nil {
		return gcanvas.Bitmap{}, err
	}
	return gcanvas.BitmapFromImage(img), nil
}

// LoadBitmaps decodes every bitmap the scene names. Paths are relative to
// Dir unless absolute. bc may be nil.
func (s *Scene) LoadBitmaps(bc *BitmapCache) (map[string]gcanvas.Bitmap, error) {
	out := make(map[string]gcanvas.Bitmap, len(s.Bitmaps))
	for name, path := range s.Bitmaps {
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.Dir, path)
		}
		bm, err := bc.load(path)
		if err != nil {
			return nil, fmt.Errorf("bitmap %q: %w", name, err)
		}
		out[name] = bm
	}
	return out, nil
}

// Render loads the scene's bitmaps through bc, which may be nil, and draws
// the scene into a new bitmap of the scene's size.
func (s *Scene) Render(bc *BitmapCache) (gcanvas.Bitmap, error) {
	bitmaps, err := s.LoadBitmaps(bc)
	if err != nil {
		return gcanvas.Bitmap{}, err
	}
	dst := gcanvas.NewBitmap(s.Width, s.Height)
	c, err := gcanvas.New(dst)
	if err != nil {
		return gcanvas.Bitmap{}, err
	}
	if err := s.Draw(c, bitmaps); err != nil {
		return gcanvas.Bitmap{}, err
	}
	return dst, nil
}

// Draw replays the scene onto c. The background, when set, clears the
// canvas first.
func (s *Scene) Draw(c *gcanvas.Canvas, bitmaps map[string]gcanvas.Bitmap) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Background != nil {
		c.Clear(argb(s.Background))
	}
	for i := range s.Ops {
		op := &s.Ops[i]
		if err := drawOp(c, op, bitmaps); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
	}
	return nil
}

func drawOp(c *gcanvas.Canvas, op *Op, bitmaps map[string]gcanvas.Bitmap) error {
	switch op.Kind {
	case KindClear:
		c.Clear(argb(op.Color))
	case KindRect:
		c.FillRect(rect(op.Rect), argb(op.Color))
	case KindPolygon:
		c.FillConvexPolygon(points(op.Points), argb(op.Color))
	case KindBitmap:
		bm, ok := bitmaps[op.Bitmap]
		if !ok {
			return fmt.Errorf("bitmap %q not loaded", op.Bitmap)
		}
		c.FillBitmapRect(bm, rect(op.Rect))
	case KindShadeRect:
		sh, err := shader(op.Shader, bitmaps)
		if err != nil {
			return err
		}
		c.ShadeRect(rect(op.Rect), sh)
	case KindShadePolygon:
		sh, err := shader(op.Shader, bitmaps)
		if err != nil {
			return err
		}
		c.ShadeConvexPolygon(points(op.Points), sh)
	case KindStroke:
		st := gcanvas.Stroke{Width: op.Width, MiterLimit: op.MiterLimit, AddCap: op.Cap}
		if st.Width == 0 {
			st.Width = 1
		}
		if st.MiterLimit == 0 {
			st.MiterLimit = gcanvas.DefaultStroke().MiterLimit
		}
		if op.Shader == nil {
			c.StrokePolygonColor(points(op.Points), op.Closed, st, argb(op.Color))
			return nil
		}
		sh, err := shader(op.Shader, bitmaps)
		if err != nil {
			return err
		}
		c.StrokePolygon(points(op.Points), op.Closed, st, sh)
	case KindSave:
		c.Save()
	case KindRestore:
		c.Restore()
	case KindConcat:
		c.Concat(matrix(op.Matrix))
	case KindTranslate:
		c.Translate(op.X, op.Y)
	case KindScale:
		c.Scale(op.X, op.Y)
	case KindRotate:
		c.Rotate(op.Angle * math32.Pi / 180)
	default:
		return fmt.Errorf("%w: unknown op kind %q", ErrInvalid, op.Kind)
	}
	return nil
}

func shader(sh *Shader, bitmaps map[string]gcanvas.Bitmap) (gcanvas.Shader, error) {
	if sh == nil {
		return nil, fmt.Errorf("%w: missing shader", ErrInvalid)
	}
	switch sh.Kind {
	case ShaderColor:
		return gcanvas.NewColorShader(argb(sh.Color)), nil
	case ShaderBitmap:
		bm, ok := bitmaps[sh.Bitmap]
		if !ok {
			return nil, fmt.Errorf("bitmap %q not loaded", sh.Bitmap)
		}
		if sh.Rect != nil {
			return gcanvas.NewBitmapRectShader(bm, rect(sh.Rect)), nil
		}
		local := gcanvas.Identity()
		if sh.Matrix != nil {
			local = matrix(sh.Matrix)
		}
		return gcanvas.NewBitmapShader(bm, local), nil
	case ShaderLinear:
		p := points(sh.Points)
		return gcanvas.NewLinearGradient(
			[2]gcanvas.Point{p[0], p[1]},
			[2]gcanvas.Color{argb(sh.Colors[0]), argb(sh.Colors[1])},
		), nil
	case ShaderRadial:
		return gcanvas.NewRadialGradient(
			gcanvas.Pt(sh.Center[0], sh.Center[1]),
			sh.Radius,
			[2]gcanvas.Color{argb(sh.Colors[0]), argb(sh.Colors[1])},
		), nil
	}
	return nil, fmt.Errorf("%w: unknown shader kind %q", ErrInvalid, sh.Kind)
}

// argb converts [a, r, g, b].
func argb(v []float32) gcanvas.Color {
	return gcanvas.ARGB(v[0], v[1], v[2], v[3])
}

// rect converts [left, top, right, bottom].
func rect(v []float32) gcanvas.Rect {
	return gcanvas.RectLTRB(v[0], v[1], v[2], v[3])
}

// matrix converts [a, b, c, d, e, f].
func matrix(v []float32) gcanvas.Matrix {
	return gcanvas.MatrixFromAff3(f32.Aff3(v))
}

func points(v [][]float32) []gcanvas.Point {
	out := make([]gcanvas.Point, len(v))
	for i, p := range v {
		out[i] = gcanvas.Pt(p[0], p[1])
	}
	return out
}
