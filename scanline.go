package rgbe

// unRLE decodes the binary pixel data that follows the header and
// returns one 4-byte RGBE quad per pixel, in scanline order.
//
// New-style files encode each scanline as a (2, 2, hi, lo) marker
// followed by four run-length encoded planes of width bytes each: red,
// green, blue, exponent. Files with a scanline width outside the
// eligible range, or whose data does not start with a marker, store the
// quads flat and are returned as-is.
func unRLE(data []byte, width, height int) ([]byte, error) {
	if !rleEligible(data, width) {
		// Division keeps the 4*width*height bound overflow-free for
		// arbitrarily large header dimensions.
		if height > 0 && len(data)/4/height < width {
			return nil, ReadError("truncated image data")
		}
		return data, nil
	}

	if int(data[2])<<8|int(data[3]) != width {
		return nil, FormatError("wrong scanline width")
	}

	// A scanline cannot be encoded in fewer bytes than its marker plus
	// four planes of maximum-length runs. Claiming more scanlines than
	// the input can hold is a truncation, and checking it up front keeps
	// the output allocation proportional to the input.
	minScanlineBytes := 4 + 8*((width+126)/127)
	if height > len(data)/minScanlineBytes {
		return nil, ReadError("truncated scanline data")
	}

	dst := make([]byte, 0, 4*width*height)
	scanline := make([]byte, 4*width)

	pos := 0
	for remaining := height; remaining > 0; remaining-- {
		if pos+4 > len(data) {
			return nil, ReadError("truncated scanline marker")
		}
		if data[pos] != 2 || data[pos+1] != 2 || int(data[pos+2])<<8|int(data[pos+3]) != width {
			return nil, FormatError("bad rgbe scanline format")
		}
		pos += 4

		// Fill the four planes. A count byte above 128 repeats the next
		// byte count-128 times, otherwise count raw bytes follow.
		ptr := 0
		for ptr < len(scanline) {
			if pos >= len(data) {
				return nil, ReadError("truncated scanline data")
			}
			count := int(data[pos])
			pos++

			run := count > 128
			if run {
				count -= 128
			}
			if count == 0 || ptr+count > len(scanline) {
				return nil, FormatError("bad scanline data")
			}

			if run {
				if pos >= len(data) {
					return nil, ReadError("truncated scanline data")
				}
				b := data[pos]
				pos++
				for ; count > 0; count-- {
					scanline[ptr] = b
					ptr++
				}
			} else {
				if pos+count > len(data) {
					return nil, ReadError("truncated scanline data")
				}
				copy(scanline[ptr:ptr+count], data[pos:pos+count])
				ptr += count
				pos += count
			}
		}

		// Deinterleave the planes into per-pixel quads.
		for i := 0; i < width; i++ {
			dst = append(dst, scanline[i], scanline[width+i], scanline[2*width+i], scanline[3*width+i])
		}
	}

	return dst, nil
}

// rleEligible reports whether data starts with a new-style run-length
// encoded scanline. The width word of the first marker is validated by
// the caller.
func rleEligible(data []byte, width int) bool {
	if width < minScanlineWidth || width > maxScanlineWidth {
		return false
	}
	if len(data) < 4 {
		return false
	}
	return data[0] == 2 && data[1] == 2 && data[2]&0x80 == 0
}
