package rgbe

// Resources:
// https://radsite.lbl.gov/radiance/refer/filefmts.pdf (Radiance picture format)
// https://www.graphics.cornell.edu/~bjw/rgbe.html (reference rgbe.c/rgbe.h)
// http://paulbourke.net/dataformats/pic/ (header and scanline layout)

import (
	"image"
	"io"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/hdrcolor"
	"github.com/pkg/errors"
)

// Result holds a decoded Radiance picture. Exactly one of Pix, PixFloat
// and PixHalf is populated, according to the requested Target:
// TargetUint8 keeps the raw RGBE quads in Pix (4 components per pixel,
// the fourth being the shared exponent byte), the float targets hold
// linear RGB triples in PixFloat or PixHalf.
type Result struct {
	Width  int
	Height int

	Pix      []uint8
	PixFloat []float32
	PixHalf  []uint16

	HeaderText string
	Gamma      float32
	Exposure   float32

	PixelFormat   PixelFormat
	ComponentType ComponentType
}

// DecodePixels decodes a complete in-memory Radiance picture into the
// representation selected by target. Decoding is all-or-nothing: any
// header, scanline or conversion failure returns a nil Result and one
// of FormatError, ReadError or UnsupportedError.
//
// Gamma and exposure are carried over from the header as metadata only;
// no tone or exposure correction is applied to the pixel values.
func DecodePixels(data []byte, target Target) (*Result, error) {
	pos := 0

	h, err := parseHeader(data, &pos)
	if err != nil {
		return nil, err
	}

	quads, err := unRLE(data[pos:], h.width, h.height)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Width:      h.width,
		Height:     h.height,
		HeaderText: h.text,
		Gamma:      h.gamma,
		Exposure:   h.exposure,
	}

	switch target {
	case TargetUint8:
		res.Pix = quads
		res.PixelFormat = PixelFormatRGBE
		res.ComponentType = ComponentUint8
	case TargetFloat32:
		res.PixFloat = rgbeToFloat(quads)
		res.PixelFormat = PixelFormatRGB
		res.ComponentType = ComponentFloat32
	case TargetFloat16:
		res.PixHalf = rgbeToHalf(quads)
		res.PixelFormat = PixelFormatRGB
		res.ComponentType = ComponentFloat16
	default:
		return nil, UnsupportedError("output target")
	}

	return res, nil
}

// DecodeConfig returns the color model and dimensions of a Radiance
// picture without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, errors.Wrap(err, "rgbe: could not read input")
	}

	pos := 0
	h, err := parseHeader(data, &pos)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: hdrcolor.RGBModel,
		Width:      h.width,
		Height:     h.height,
	}, nil
}

// Decode reads a Radiance picture from r and returns an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "rgbe: could not read input")
	}

	res, err := DecodePixels(data, TargetFloat32)
	if err != nil {
		return nil, err
	}

	m := hdr.NewRGB(image.Rect(0, 0, res.Width, res.Height))
	i := 0
	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			m.SetRGB(x, y, hdrcolor.RGB{
				R: float64(res.PixFloat[i]),
				G: float64(res.PixFloat[i+1]),
				B: float64(res.PixFloat[i+2]),
			})
			i += 3
		}
	}

	return m, nil
}

func init() {
	image.RegisterFormat("rgbe", radianceHeader, Decode, DecodeConfig)
	image.RegisterFormat("rgbe", rgbeHeader, Decode, DecodeConfig)
}
