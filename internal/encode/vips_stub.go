//go:build novips

package encode

import (
	"errors"
	"image"
)

// ErrVipsUnavailable is returned by VipsJPEGEncoder in builds tagged novips.
var ErrVipsUnavailable = errors.New("libvips support not compiled in (built with -tags novips); use --jpeg-encoder native")

// VipsJPEGEncoder is a placeholder in builds without libvips. It validates
// the quality like the real encoder and then fails with ErrVipsUnavailable.
type VipsJPEGEncoder struct{}

func (VipsJPEGEncoder) Name() string { return JPEGVips }

func (VipsJPEGEncoder) Progressive() bool { return true }

func (VipsJPEGEncoder) EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if err := checkQuality(quality); err != nil {
		return nil, err
	}
	return nil, ErrVipsUnavailable
}

// VipsAvailable reports whether the binary was built with libvips.
func VipsAvailable() bool { return false }

// VipsVersion reports the linked libvips version.
func VipsVersion() string { return "not available" }
