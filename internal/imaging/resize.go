package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Resizer backend names accepted by [NewResizer].
const (
	ResizerImaging = "imaging"
	ResizerBild    = "bild"
	ResizerNfnt    = "nfnt"
)

// Resizer scales an image to exact dimensions.
type Resizer interface {
	Name() string
	Resize(img image.Image, width, height int) image.Image
}

// LanczosResizer resizes with disintegration/imaging's Lanczos filter.
type LanczosResizer struct{}

func (LanczosResizer) Name() string { return ResizerImaging }

func (LanczosResizer) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// BildResizer resizes with anthonynsimon/bild's Lanczos filter.
type BildResizer struct{}

func (BildResizer) Name() string { return ResizerBild }

func (BildResizer) Resize(img image.Image, width, height int) image.Image {
	return transform.Resize(img, width, height, transform.Lanczos)
}

// NfntResizer resizes with nfnt/resize's Lanczos3 kernel.
type NfntResizer struct{}

func (NfntResizer) Name() string { return ResizerNfnt }

func (NfntResizer) Resize(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// NewResizer returns the resizer registered under name.
func NewResizer(name string) (Resizer, error) {
	switch name {
	case ResizerImaging, "":
		return LanczosResizer{}, nil
	case ResizerBild:
		return BildResizer{}, nil
	case ResizerNfnt:
		return NfntResizer{}, nil
	default:
		return nil, fmt.Errorf("unknown resizer: %s", name)
	}
}

// FitWidth returns the dimensions of a width x height image scaled down to at
// most maxWidth pixels wide, preserving aspect ratio. A maxWidth of zero or less
// means unconstrained. The height is rounded down but never drops below 1.
func FitWidth(width, height, maxWidth int) (int, int) {
	if maxWidth <= 0 || width <= maxWidth {
		return width, height
	}
	newHeight := int(int64(height) * int64(maxWidth) / int64(width))
	if newHeight < 1 {
		newHeight = 1
	}
	return maxWidth, newHeight
}
