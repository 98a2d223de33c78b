//go:build !novips

package encode

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/h2non/bimg"
)

// VipsJPEGEncoder writes progressive JPEGs through libvips.
//
// The image is handed over as lossless PNG so no quality is lost before the
// final JPEG encode.
type VipsJPEGEncoder struct{}

func (VipsJPEGEncoder) Name() string { return JPEGVips }

func (VipsJPEGEncoder) Progressive() bool { return true }

func (VipsJPEGEncoder) EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if err := checkQuality(quality); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to prepare image for libvips: %w", err)
	}

	out, err := bimg.NewImage(buf.Bytes()).Process(bimg.Options{
		Type:          bimg.JPEG,
		Quality:       quality,
		Interlace:     true,
		StripMetadata: true,
		NoAutoRotate:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode jpeg with libvips: %w", err)
	}
	return out, nil
}

// VipsAvailable reports whether the binary was built with libvips.
func VipsAvailable() bool { return true }

// VipsVersion reports the linked libvips version.
func VipsVersion() string {
	return bimg.VipsVersion
}
