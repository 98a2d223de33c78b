package imaging

import "image"

// ColorMode names the pixel layout of a decoded image.
type ColorMode string

const (
	ModeRGB       ColorMode = "RGB"
	ModeRGBA      ColorMode = "RGBA"
	ModeGray      ColorMode = "L"
	ModeGrayAlpha ColorMode = "LA"
	ModePalette   ColorMode = "P"
	ModeCMYK      ColorMode = "CMYK"
	ModeYCbCr     ColorMode = "YCbCr"
)

// HasAlpha reports whether the mode carries an alpha channel.
// Palette images are not counted; their transparency lives in the palette.
func (m ColorMode) HasAlpha() bool {
	return m == ModeRGBA || m == ModeGrayAlpha
}

// NeedsFlatten reports whether a JPEG encode must composite this mode over a
// background first.
func (m ColorMode) NeedsFlatten() bool {
	return m.HasAlpha() || m == ModePalette
}

type opaquer interface {
	Opaque() bool
}

// Mode derives the color mode of img from its concrete type.
func Mode(img image.Image) ColorMode {
	switch m := img.(type) {
	case *image.Paletted:
		return ModePalette
	case *image.Gray, *image.Gray16:
		return ModeGray
	case *image.Alpha, *image.Alpha16:
		return ModeGrayAlpha
	case *image.CMYK:
		return ModeCMYK
	case *image.YCbCr:
		return ModeYCbCr
	case *image.NYCbCrA:
		if m.Opaque() {
			return ModeYCbCr
		}
		return ModeRGBA
	}

	if o, ok := img.(opaquer); ok && !o.Opaque() {
		return ModeRGBA
	}
	return ModeRGB
}
