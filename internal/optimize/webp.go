package optimize

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ironsheep/image-optimizer/internal/imaging"
)

// WebPPath returns path with its final extension replaced by .webp.
// Paths that are already .webp are rejected so a sibling never overwrites its source.
func WebPPath(path string) (string, error) {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".webp") {
		return "", fmt.Errorf("%s is already a webp file", path)
	}
	return strings.TrimSuffix(path, ext) + ".webp", nil
}

// CreateWebP writes a WebP version of the image at path next to it.
//
// Alpha is kept unless the optimizer was built WithFlattenWebP. The tier comes
// from the size of path as it is now, which after OptimizeJPEG is the
// optimized size.
func (o *Optimizer) CreateWebP(path string) (*Result, error) {
	outPath, err := WebPPath(path)
	if err != nil {
		return nil, err
	}

	src, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}

	tier := SelectTier(src.Size)

	prepared, mode := imaging.ConvertKeepAlpha(src.Image)
	if o.flattenWebP {
		prepared, mode = imaging.FlattenToRGB(src.Image, o.background)
	}
	out, resized := o.fit(prepared, tier)

	data, err := o.webp.EncodeWebP(out, tier.Quality)
	if err != nil {
		return nil, fmt.Errorf("failed to create webp for %s: %w", path, err)
	}
	if err := writeFileAtomic(outPath, data); err != nil {
		return nil, err
	}

	sb := src.Image.Bounds()
	ob := out.Bounds()
	o.log.Debug("created webp",
		zap.String("path", outPath),
		zap.Stringer("tier", tier),
		zap.String("mode", string(mode)),
		zap.Int64("before", src.Size),
		zap.Int("after", len(data)),
	)

	return &Result{
		Path:         path,
		OutputPath:   outPath,
		Format:       FormatWebP,
		Encoder:      o.webp.Name(),
		Tier:         tier,
		SourceFormat: src.Format,
		SourceMode:   mode,
		SourceWidth:  sb.Dx(),
		SourceHeight: sb.Dy(),
		Width:        ob.Dx(),
		Height:       ob.Dy(),
		Resized:      resized,
		BeforeBytes:  src.Size,
		AfterBytes:   int64(len(data)),
	}, nil
}
