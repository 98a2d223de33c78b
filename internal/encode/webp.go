package encode

import (
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// WebPEncoder writes lossy WebP images. Alpha is kept when present.
type WebPEncoder struct{}

func (WebPEncoder) Name() string { return "webp" }

// EncodeWebP hands libwebp straight (non-premultiplied) RGBA. The image.RGBA
// wrapper only carries the bytes; libwebp reads them as unassociated alpha.
func (WebPEncoder) EncodeWebP(img image.Image, quality int) ([]byte, error) {
	if err := checkQuality(quality); err != nil {
		return nil, err
	}

	n := imaging.Clone(img)
	var (
		data []byte
		err  error
	)
	if n.Opaque() {
		data, err = webp.EncodeRGB(n, float32(quality))
	} else {
		data, err = webp.EncodeRGBA(&image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}, float32(quality))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}
	return data, nil
}
