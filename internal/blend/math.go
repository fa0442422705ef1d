package blend

import "github.com/chewxy/math32"

// pin01 restricts x to [0, 1].
func pin01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// floor0 clamps negative values to zero and leaves the rest untouched.
func floor0(x float32) float32 {
	if x < 0 {
		return 0
	}
	return x
}

// roundByte rounds x to the nearest integer and clamps it to [0, limit].
func roundByte(x float32, limit byte) byte {
	v := math32.Round(x)
	if v <= 0 {
		return 0
	}
	if v >= float32(limit) {
		return limit
	}
	return byte(v)
}
