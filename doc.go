// Package gcanvas provides a small software 2D rasterizer for Go.
//
// # Overview
//
// gcanvas draws into a caller-owned buffer of premultiplied ARGB pixels.
// It fills rectangles, convex polygons and stroked polylines, without
// anti-aliasing, and composites every draw SRC-OVER.
//
// # Quick Start
//
//	import "github.com/gogpu/gcanvas"
//
//	bm := gcanvas.NewBitmap(256, 256)
//	c, err := gcanvas.New(bm)
//	if err != nil {
//		return err
//	}
//	c.Clear(gcanvas.White)
//	c.Translate(128, 128)
//	c.Rotate(math.Pi / 8)
//	c.FillRect(gcanvas.RectXYWH(-50, -50, 100, 100), gcanvas.ARGB(0.8, 1, 0, 0))
//	img := bm.ToImage()
//
// # Geometry
//
// All geometry is mapped by the current transform (CTM) before it is
// rasterized. Save, Restore and Concat manage the CTM as a stack.
// A pixel is covered when its center (x+0.5, y+0.5) lies inside the mapped
// shape, with spans half-open on the right.
//
// # Shaders
//
// ShadeRect, ShadeConvexPolygon and StrokePolygon take a Shader: a solid
// color, a nearest-neighbour bitmap sampler, or a two-color linear or
// radial gradient.
//
// # Strokes
//
// A stroke is drawn as one quad per segment plus one polygon per join.
// Each polygon is composited on its own, so overlapping parts of a
// translucent stroke are blended twice.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians; positive angles turn +X toward +Y
package gcanvas

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
