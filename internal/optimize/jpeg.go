package optimize

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ironsheep/image-optimizer/internal/imaging"
)

// OptimizeJPEG recompresses the image at path as a JPEG and overwrites it.
//
// Transparent, gray+alpha and palette images are composited over the
// background first. The tier comes from the file's current size.
func (o *Optimizer) OptimizeJPEG(path string) (*Result, error) {
	src, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}

	tier := SelectTier(src.Size)
	flat, mode := imaging.FlattenToRGB(src.Image, o.background)
	out, resized := o.fit(flat, tier)

	data, err := o.jpeg.EncodeJPEG(out, tier.Quality)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize %s: %w", path, err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return nil, err
	}

	sb := src.Image.Bounds()
	ob := out.Bounds()
	o.log.Debug("optimized jpeg",
		zap.String("path", path),
		zap.Stringer("tier", tier),
		zap.String("mode", string(mode)),
		zap.String("encoder", o.jpeg.Name()),
		zap.Int64("before", src.Size),
		zap.Int("after", len(data)),
	)

	return &Result{
		Path:         path,
		OutputPath:   path,
		Format:       FormatJPEG,
		Encoder:      o.jpeg.Name(),
		Tier:         tier,
		SourceFormat: src.Format,
		SourceMode:   mode,
		SourceWidth:  sb.Dx(),
		SourceHeight: sb.Dy(),
		Width:        ob.Dx(),
		Height:       ob.Dy(),
		Resized:      resized,
		Progressive:  o.jpeg.Progressive(),
		BeforeBytes:  src.Size,
		AfterBytes:   int64(len(data)),
	}, nil
}
