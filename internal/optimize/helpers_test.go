package optimize

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/image-optimizer/internal/encode"
)

// writePNG encodes img as PNG into dir/name and returns the path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return path
}

// noise returns an image of random pixels, which PNG cannot compress.
// With translucent set, alpha varies between 128 and 255.
func noise(width, height int, seed int64, translucent bool) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(rng.Intn(256))
		img.Pix[i+1] = uint8(rng.Intn(256))
		img.Pix[i+2] = uint8(rng.Intn(256))
		img.Pix[i+3] = 255
		if translucent {
			img.Pix[i+3] = uint8(128 + rng.Intn(128))
		}
	}
	return img
}

func uniform(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func fileSize(t *testing.T, path string) int64 {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat %s: %v", path, err)
	}
	return fi.Size()
}

// nativeOptimizer avoids libvips for tests that do not check progressive output.
func nativeOptimizer(opts ...Option) *Optimizer {
	return New(append([]Option{WithJPEGEncoder(encode.NativeJPEGEncoder{})}, opts...)...)
}

type failingJPEG struct{}

func (failingJPEG) Name() string      { return "failing" }
func (failingJPEG) Progressive() bool { return false }
func (failingJPEG) EncodeJPEG(image.Image, int) ([]byte, error) {
	return nil, errors.New("encoder exploded")
}

type failingWebP struct{}

func (failingWebP) Name() string { return "failing" }
func (failingWebP) EncodeWebP(image.Image, int) ([]byte, error) {
	return nil, errors.New("encoder exploded")
}
