package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// White is the default flatten background.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ParseColor parses a hex color like "#FFFFFF", "ffffff" or "#fff" into an
// opaque color. Alpha is not accepted; a flatten background must be opaque.
func ParseColor(hex string) (color.NRGBA, error) {
	s := strings.TrimSpace(hex)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Flatten composites img over a canvas filled with bg and returns an opaque
// image with the same size as img. Transparency is lost.
func Flatten(img image.Image, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), bg)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// FlattenToRGB prepares img for a format without alpha support.
//
// RGBA, LA and P images are composited over bg; every other mode is converted
// to RGB as is. The detected source mode is returned alongside the result.
func FlattenToRGB(img image.Image, bg color.Color) (*image.NRGBA, ColorMode) {
	mode := Mode(img)
	if mode.NeedsFlatten() {
		return Flatten(img, bg), mode
	}
	return imaging.Clone(img), mode
}

// ConvertKeepAlpha prepares img for a format with alpha support.
//
// RGBA and LA keep their alpha, P is expanded to RGBA, everything else becomes
// opaque RGB. No background is applied.
func ConvertKeepAlpha(img image.Image) (*image.NRGBA, ColorMode) {
	return imaging.Clone(img), Mode(img)
}
