package rgbe

import "github.com/chewxy/math32"

// rgbeToFloat expands RGBE quads into linear RGB, three float32 per
// pixel. The shared exponent scales all three mantissa bytes:
//
//	value = mantissa * 2^(e-128) / 255
//
// A zero exponent byte is not special cased; it yields a minuscule but
// nonzero value.
func rgbeToFloat(src []byte) []float32 {
	dst := make([]float32, len(src)/4*3)

	for i, j := 0, 0; i+4 <= len(src); i, j = i+4, j+3 {
		scale := math32.Exp2(float32(src[i+3])-128) / 255
		dst[j] = float32(src[i]) * scale
		dst[j+1] = float32(src[i+1]) * scale
		dst[j+2] = float32(src[i+2]) * scale
	}

	return dst
}
