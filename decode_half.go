package rgbe

import (
	"github.com/chewxy/math32"
	"github.com/x448/float16"
)

// rgbeToHalf expands RGBE quads into linear RGB, three half-precision
// words per pixel. The scale computation is the same as rgbeToFloat;
// each channel is then rounded to the nearest 16-bit float.
func rgbeToHalf(src []byte) []uint16 {
	dst := make([]uint16, len(src)/4*3)

	for i, j := 0, 0; i+4 <= len(src); i, j = i+4, j+3 {
		scale := math32.Exp2(float32(src[i+3])-128) / 255
		dst[j] = float16.Fromfloat32(float32(src[i]) * scale).Bits()
		dst[j+1] = float16.Fromfloat32(float32(src[i+1]) * scale).Bits()
		dst[j+2] = float16.Fromfloat32(float32(src[i+2]) * scale).Bits()
	}

	return dst
}
