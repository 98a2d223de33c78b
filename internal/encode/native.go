package encode

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// NativeJPEGEncoder writes baseline JPEGs with the Go standard encoder.
type NativeJPEGEncoder struct{}

func (NativeJPEGEncoder) Name() string { return JPEGNative }

func (NativeJPEGEncoder) Progressive() bool { return false }

func (NativeJPEGEncoder) EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if err := checkQuality(quality); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
