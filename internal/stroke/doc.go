// Package stroke converts a stroked polyline into convex polygons.
//
// A stroke is never turned into one outline. Instead every segment becomes a
// quad and every corner becomes a small join polygon, and each piece is handed
// to the caller separately so the convex scanline filler can draw it.
//
// # Segments
//
// Each segment A->B is offset by half the stroke width on both sides, giving
// the quad A-n, A+n, B+n, B-n where n is the half-width normal.
//
// # Caps
//
// With Style.AddCap set, the first and last points of an open path are pushed
// outward along their segment by half the width, which yields a square cap.
// Closed paths have no caps.
//
// # Joins
//
// Joins are built on the outer side of each turn:
//   - bevel: the triangle between the vertex and the two offset corners
//   - miter: the quad that also reaches the intersection of the two offset
//     edges
//
// A join is beveled when the summed direction-component magnitudes of the two
// unit segment directions exceed Style.MiterLimit, when MiterLimit equals
// BevelMiterLimit, or when the turn is so sharp that the miter point would be
// at infinity.
//
// # Overlap
//
// The pieces overlap along shared edges and inside joins. Drawn with a
// translucent color the overlaps are blended twice; strokes compared pixel by
// pixel must account for that.
package stroke
