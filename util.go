package rgbe

import "fmt"

// A FormatError reports that the input is not a valid RGBE image.
type FormatError string

func (e FormatError) Error() string {
	return fmt.Sprintf("rgbe: invalid format: %s", string(e))
}

// A ReadError reports that the input ended before a complete RGBE
// image could be read.
type ReadError string

func (e ReadError) Error() string {
	return fmt.Sprintf("rgbe: read error: %s", string(e))
}

// An UnsupportedError reports that a valid but unimplemented feature
// was requested.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("rgbe: unsupported feature: %s", string(e))
}

// minInt returns the smaller of x or y.
func minInt(a, b int) int {
	if a <= b {
		return a
	}
	return b
}
