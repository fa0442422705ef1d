package blend

// Source returns the SRC-mode result for a straight-alpha color: the color
// packed as a premultiplied pixel. The destination is never read.
func Source(a, r, g, b float32) Pixel {
	return FromColor(a, r, g, b)
}

// SourceOver composites a straight-alpha color over dst using the
// Porter-Duff "over" operator.
//
// a is the source alpha in [0,1] (negative values become 0, values above 1
// become 1). r, g, b are straight channels nominally in [0,1]; negative
// values become 0 and there is no upper clamp before blending. The result is
// clamped so that no color byte exceeds the alpha byte.
func SourceOver(dst Pixel, a, r, g, b float32) Pixel {
	return over(dst, pin01(a), floor0(r)*255, floor0(g)*255, floor0(b)*255)
}

// SourceOverPixel composites a premultiplied source pixel over dst.
// The source is unpremultiplied and run through the same arithmetic as
// SourceOver.
func SourceOverPixel(dst, src Pixel) Pixel {
	if src.A() == 0 {
		return dst
	}
	if src.IsOpaque() {
		return src
	}
	sa := float32(src.A()) / 255
	return over(dst, sa,
		float32(src.R())/sa,
		float32(src.G())/sa,
		float32(src.B())/sa)
}

// SourceOverRow composites src[i] over dst[i] for every i.
// Both slices must have the same length.
func SourceOverRow(dst, src []Pixel) {
	for i, s := range src {
		dst[i] = SourceOverPixel(dst[i], s)
	}
}

// FillRow composites one straight-alpha color over every pixel of dst.
func FillRow(dst []Pixel, a, r, g, b float32) {
	a = pin01(a)
	if a == 0 {
		return
	}
	sr, sg, sb := floor0(r)*255, floor0(g)*255, floor0(b)*255
	for i := range dst {
		dst[i] = over(dst[i], a, sr, sg, sb)
	}
}

// over is the shared SRC-OVER formula.
//
// sa is the source alpha in [0,1]; sr, sg, sb are straight source channels
// on a 0..255 scale. The destination is unpremultiplied, blended in straight
// space, then premultiplied again on store.
func over(dst Pixel, sa, sr, sg, sb float32) Pixel {
	da := float32(dst.A()) / 255
	var dr, dg, db float32
	if da > 0 {
		dr = float32(dst.R()) / da
		dg = float32(dst.G()) / da
		db = float32(dst.B()) / da
	}

	invSa := 1 - sa
	outA := sa + da*invSa
	if outA == 0 {
		return 0
	}

	dw := da * invSa
	outR := (sr*sa + dr*dw) / outA
	outG := (sg*sa + dg*dw) / outA
	outB := (sb*sa + db*dw) / outA

	a := roundByte(outA*255, 0xFF)
	return PackARGB(a,
		roundByte(outR*outA, a),
		roundByte(outG*outA, a),
		roundByte(outB*outA, a))
}
