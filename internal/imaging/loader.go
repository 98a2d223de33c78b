package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Source is a decoded image plus what was learned about the file it came from.
type Source struct {
	// Image is the decoded image. The concrete type depends on the format and
	// color model (e.g., *image.YCbCr for JPEG, *image.NRGBA for PNG with alpha).
	Image image.Image

	// Format is the decoder name reported by image.Decode: "jpeg", "png",
	// "gif" or "webp". It reflects file contents, not the extension.
	Format string

	// Size is the size of the file on disk in bytes at the time of loading.
	Size int64
}

// Load opens path, records its size and decodes it.
//
// The returned error wraps the underlying os or decode error, so
// errors.Is(err, fs.ErrNotExist) identifies a missing file.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("failed to open image: %s is a directory", path)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Source{
		Image:  img,
		Format: format,
		Size:   stat.Size(),
	}, nil
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width" yaml:"width"`

	// Height is the image height in pixels.
	Height int `json:"height" yaml:"height"`

	// Format is the decoder that accepted the file: "png", "jpeg", "gif" or "webp".
	Format string `json:"format" yaml:"format"`

	// Mode is the derived color mode (see [Mode]).
	Mode ColorMode `json:"mode" yaml:"mode"`

	// HasAlpha reports whether the image carries transparency that a JPEG
	// encode would lose.
	HasAlpha bool `json:"has_alpha" yaml:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes" yaml:"file_size_bytes"`
}

// Info summarizes a loaded source.
func (s *Source) Info() *ImageInfo {
	bounds := s.Image.Bounds()
	mode := Mode(s.Image)
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        s.Format,
		Mode:          mode,
		HasAlpha:      mode.HasAlpha(),
		FileSizeBytes: s.Size,
	}
}

// LoadImageInfo loads an image and returns its metadata.
func LoadImageInfo(path string) (*ImageInfo, error) {
	src, err := Load(path)
	if err != nil {
		return nil, err
	}
	return src.Info(), nil
}
