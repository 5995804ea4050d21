package rgbe

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
)

//------------------------//
// Header parser          //
//------------------------//

// header is built incrementally while consuming the textual part of the
// file. width and height are only meaningful once validDimensions is set.
type header struct {
	valid       int
	text        string
	comments    string
	programType string
	format      string
	gamma       float32
	exposure    float32
	width       int
	height      int
}

var (
	magicTokenRegexp = regexp.MustCompile(`^#\?(\S+)`)
	gammaRegexp      = regexp.MustCompile(`^\s*GAMMA\s*=\s*(\d+(\.\d+)?)\s*$`)
	exposureRegexp   = regexp.MustCompile(`^\s*EXPOSURE\s*=\s*(\d+(\.\d+)?)\s*$`)
	formatRegexp     = regexp.MustCompile(`^\s*FORMAT=(\S+)\s*$`)
	dimensionsRegexp = regexp.MustCompile(`^\s*-Y\s+(\d+)\s+\+X\s+(\d+)\s*$`)
)

// readLine returns the next newline-terminated line of buf starting at
// *pos, without the newline. The newline must appear within lineLimit
// bytes and before the end of the buffer, otherwise ok is false and the
// cursor does not move. The cursor is advanced past the newline only
// when consume is set.
//
// The buffer is scanned in chunks of chunkSize bytes to bound per-call
// work; the result is the same as a byte-by-byte scan.
func readLine(buf []byte, pos *int, consume bool) (line string, ok bool) {
	offset := *pos
	if offset >= len(buf) {
		return "", false
	}

	limit := minInt(lineLimit, len(buf)-offset)
	for i := 0; i < limit; i += chunkSize {
		n := minInt(chunkSize, limit-i)
		chunk := buf[offset+i : offset+i+n]

		if j := bytes.IndexByte(chunk, '\n'); j >= 0 {
			line = string(buf[offset : offset+i+j])
			if consume {
				*pos = offset + i + j + 1
			}
			return line, true
		}
	}

	return "", false
}

// parseHeader consumes the textual header of a Radiance picture and
// leaves *pos at the first byte of the binary pixel data.
func parseHeader(buf []byte, pos *int) (header, error) {
	h := header{
		gamma:    defaultGamma,
		exposure: defaultExposure,
	}

	line, ok := readLine(buf, pos, true)
	if !ok {
		return h, ReadError("no header found")
	}

	m := magicTokenRegexp.FindStringSubmatch(line)
	if m == nil {
		return h, FormatError("bad initial token")
	}
	h.valid |= validProgramType
	h.programType = m[1]
	h.text += line + "\n"

	for h.valid&validFormat == 0 || h.valid&validDimensions == 0 {
		if line, ok = readLine(buf, pos, true); !ok {
			break
		}
		h.text += line + "\n"

		if strings.HasPrefix(line, "#") {
			h.comments += line + "\n"
			continue
		}

		// The patterns are not mutually exclusive; each one gets a look.
		if m = gammaRegexp.FindStringSubmatch(line); m != nil {
			v, _ := strconv.ParseFloat(m[1], 32)
			h.gamma = float32(v)
		}
		if m = exposureRegexp.FindStringSubmatch(line); m != nil {
			v, _ := strconv.ParseFloat(m[1], 32)
			h.exposure = float32(v)
		}
		if m = formatRegexp.FindStringSubmatch(line); m != nil {
			h.format = m[1]
			h.valid |= validFormat
		}
		if m = dimensionsRegexp.FindStringSubmatch(line); m != nil {
			y, err := strconv.Atoi(m[1])
			if err != nil {
				return h, FormatError("bad image size specifier")
			}
			x, err := strconv.Atoi(m[2])
			if err != nil {
				return h, FormatError("bad image size specifier")
			}
			h.height, h.width = y, x
			h.valid |= validDimensions
		}
	}

	if h.valid&validFormat == 0 {
		return h, FormatError("missing format specifier")
	}
	if h.valid&validDimensions == 0 {
		return h, FormatError("missing image size specifier")
	}

	return h, nil
}
