package rgbe

// A Radiance picture starts with a textual header introduced by a "#?"
// magic token, followed by variable assignments, a resolution line and
// the binary pixel data. See Radiance's ray/doc/filefmts.pdf and the
// reference implementation in ray/src/common/color.c.

const (
	radianceHeader = "#?RADIANCE"
	rgbeHeader     = "#?RGBE"
)

// Header fields tracked by the valid bitmask.
const (
	validProgramType = 1 << iota
	validFormat
	validDimensions
)

const (
	// Longest header line the reader accepts.
	lineLimit = 1024
	// Lines are scanned for a newline in fixed-size chunks.
	chunkSize = 128
)

// Scanline widths eligible for the new-style run-length encoding.
// Anything outside this range is stored flat.
const (
	minScanlineWidth = 8
	maxScanlineWidth = 0x7fff
)

const (
	defaultGamma    = 1.0
	defaultExposure = 1.0
)

// Target selects the in-memory representation of the decoded pixels.
type Target int

const (
	// TargetUint8 keeps the raw RGBE quads, 4 bytes per pixel.
	TargetUint8 Target = iota
	// TargetFloat32 expands to linear RGB, 3 float32 per pixel.
	TargetFloat32
	// TargetFloat16 expands to linear RGB, 3 half-float words per pixel.
	TargetFloat16
)

// PixelFormat tags the channel layout of a decode result.
type PixelFormat int

const (
	// PixelFormatRGBE is the packed mantissa triple plus shared exponent.
	// The fourth channel is the exponent byte, not alpha.
	PixelFormatRGBE PixelFormat = iota
	// PixelFormatRGB is a plain linear RGB triple.
	PixelFormatRGB
)

// ComponentType tags the numeric type of a decode result's components.
type ComponentType int

const (
	ComponentUint8 ComponentType = iota
	ComponentFloat32
	ComponentFloat16
)
