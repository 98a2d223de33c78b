package encode

import (
	"fmt"
	"image"
)

// JPEG encoder names accepted by [NewJPEGEncoder].
const (
	JPEGVips   = "vips"
	JPEGNative = "native"
)

// JPEGEncoder compresses an opaque image into JPEG bytes.
type JPEGEncoder interface {
	Name() string
	// Progressive reports whether the encoder writes progressive scans.
	Progressive() bool
	EncodeJPEG(img image.Image, quality int) ([]byte, error)
}

// NewJPEGEncoder returns the JPEG encoder registered under name.
func NewJPEGEncoder(name string) (JPEGEncoder, error) {
	switch name {
	case JPEGVips, "":
		return VipsJPEGEncoder{}, nil
	case JPEGNative:
		return NativeJPEGEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown jpeg encoder: %s", name)
	}
}

func checkQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}
	return nil
}
