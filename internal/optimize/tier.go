package optimize

import (
	"fmt"

	"github.com/ironsheep/image-optimizer/internal/display"
	"github.com/ironsheep/image-optimizer/internal/imaging"
)

// Tier is the compression quality and maximum output width chosen for a file.
// A MaxWidth of zero means the width is not constrained.
type Tier struct {
	Quality  int `json:"quality" yaml:"quality"`
	MaxWidth int `json:"max_width" yaml:"max_width"`
}

// Size thresholds, compared with strictly greater than.
const (
	LargeFileBytes  = 2 * display.MiB
	MediumFileBytes = 1 * display.MiB
)

var (
	largeTier  = Tier{Quality: 70, MaxWidth: 1920}
	mediumTier = Tier{Quality: 75, MaxWidth: 2400}
	smallTier  = Tier{Quality: 80}
)

// SelectTier maps a file size in bytes to its tier:
//
//	> 2 MiB  quality 70, max width 1920
//	> 1 MiB  quality 75, max width 2400
//	else     quality 80, unconstrained
func SelectTier(sizeBytes int64) Tier {
	switch {
	case sizeBytes > LargeFileBytes:
		return largeTier
	case sizeBytes > MediumFileBytes:
		return mediumTier
	default:
		return smallTier
	}
}

// Constrained reports whether the tier caps the output width.
func (t Tier) Constrained() bool {
	return t.MaxWidth > 0
}

// Fit returns the output dimensions for a width x height image.
func (t Tier) Fit(width, height int) (int, int) {
	return imaging.FitWidth(width, height, t.MaxWidth)
}

func (t Tier) String() string {
	if !t.Constrained() {
		return fmt.Sprintf("quality %d, original width", t.Quality)
	}
	return fmt.Sprintf("quality %d, max width %dpx", t.Quality, t.MaxWidth)
}
