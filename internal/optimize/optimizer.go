package optimize

import (
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/ironsheep/image-optimizer/internal/config"
	"github.com/ironsheep/image-optimizer/internal/encode"
	"github.com/ironsheep/image-optimizer/internal/imaging"
)

// WebPEncoder compresses an image into WebP bytes.
type WebPEncoder interface {
	Name() string
	EncodeWebP(img image.Image, quality int) ([]byte, error)
}

// Optimizer runs the JPEG and WebP transforms with a fixed set of backends.
// It holds no per-file state and may be reused across files.
type Optimizer struct {
	resizer     imaging.Resizer
	jpeg        encode.JPEGEncoder
	webp        WebPEncoder
	background  color.Color
	flattenWebP bool
	log         *zap.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithResizer sets the resize backend.
func WithResizer(r imaging.Resizer) Option {
	return func(o *Optimizer) { o.resizer = r }
}

// WithJPEGEncoder sets the JPEG encoder.
func WithJPEGEncoder(e encode.JPEGEncoder) Option {
	return func(o *Optimizer) { o.jpeg = e }
}

// WithWebPEncoder sets the WebP encoder.
func WithWebPEncoder(e WebPEncoder) Option {
	return func(o *Optimizer) { o.webp = e }
}

// WithBackground sets the color transparent pixels are flattened onto.
func WithBackground(c color.Color) Option {
	return func(o *Optimizer) { o.background = c }
}

// WithFlattenWebP makes CreateWebP flatten transparency like OptimizeJPEG.
func WithFlattenWebP(flatten bool) Option {
	return func(o *Optimizer) { o.flattenWebP = flatten }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Optimizer) { o.log = l }
}

// New returns an Optimizer using Lanczos resizing, progressive libvips JPEG,
// chai2010 WebP and a white background unless overridden.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		resizer:    imaging.LanczosResizer{},
		jpeg:       encode.VipsJPEGEncoder{},
		webp:       encode.WebPEncoder{},
		background: imaging.White,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return o
}

// FromConfig builds an Optimizer from validated settings.
func FromConfig(cfg *config.Config, log *zap.Logger) (*Optimizer, error) {
	bg, err := imaging.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	resizer, err := imaging.NewResizer(cfg.Resizer)
	if err != nil {
		return nil, err
	}
	jpeg, err := encode.NewJPEGEncoder(cfg.JPEGEncoder)
	if err != nil {
		return nil, err
	}

	return New(
		WithBackground(bg),
		WithResizer(resizer),
		WithJPEGEncoder(jpeg),
		WithFlattenWebP(cfg.FlattenWebP),
		WithLogger(log),
	), nil
}

// fit resizes img to the tier's width cap, reporting whether it changed.
func (o *Optimizer) fit(img image.Image, tier Tier) (image.Image, bool) {
	b := img.Bounds()
	w, h := tier.Fit(b.Dx(), b.Dy())
	if w == b.Dx() && h == b.Dy() {
		return img, false
	}
	return o.resizer.Resize(img, w, h), true
}
