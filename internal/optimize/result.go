package optimize

import (
	"github.com/ironsheep/image-optimizer/internal/display"
	"github.com/ironsheep/image-optimizer/internal/imaging"
)

// Output formats reported in Result.Format.
const (
	FormatJPEG = "jpeg"
	FormatWebP = "webp"
)

// Result describes one completed transform.
type Result struct {
	// Path is the file that was read.
	Path string `json:"path" yaml:"path"`

	// OutputPath is the file that was written. For JPEG it equals Path.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format is the output format, FormatJPEG or FormatWebP.
	Format string `json:"format" yaml:"format"`

	// Encoder names the encoder that produced the output.
	Encoder string `json:"encoder" yaml:"encoder"`

	Tier Tier `json:"tier" yaml:"tier"`

	SourceFormat string            `json:"source_format" yaml:"source_format"`
	SourceMode   imaging.ColorMode `json:"source_mode" yaml:"source_mode"`
	SourceWidth  int               `json:"source_width" yaml:"source_width"`
	SourceHeight int               `json:"source_height" yaml:"source_height"`

	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Resized is true when the tier's width cap shrank the image.
	Resized bool `json:"resized" yaml:"resized"`

	// Progressive is true for progressive JPEG output.
	Progressive bool `json:"progressive" yaml:"progressive"`

	BeforeBytes int64 `json:"before_bytes" yaml:"before_bytes"`
	AfterBytes  int64 `json:"after_bytes" yaml:"after_bytes"`
}

// Reduction is the size saved relative to the input, in percent.
func (r *Result) Reduction() float64 {
	return display.Reduction(r.BeforeBytes, r.AfterBytes)
}
