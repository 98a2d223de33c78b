package batch

import (
	"time"

	"go.uber.org/multierr"

	"github.com/ironsheep/image-optimizer/internal/display"
	"github.com/ironsheep/image-optimizer/internal/optimize"
)

// File outcomes recorded in FileReport.Status.
const (
	StatusOptimized = "optimized"
	StatusPartial   = "partial" // JPEG written, WebP failed
	StatusMissing   = "missing"
	StatusFailed    = "failed"
)

// FileReport is the outcome for one path.
type FileReport struct {
	Path          string           `json:"path" yaml:"path"`
	Status        string           `json:"status" yaml:"status"`
	OriginalBytes int64            `json:"original_bytes" yaml:"original_bytes"`
	JPEG          *optimize.Result `json:"jpeg,omitempty" yaml:"jpeg,omitempty"`
	WebP          *optimize.Result `json:"webp,omitempty" yaml:"webp,omitempty"`
	Error         string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Stats tracks counters and byte totals across a batch run.
type Stats struct {
	Total       int
	Optimized   int
	WebP        int
	Missing     int
	Failed      int
	WebPFailed  int
	Interrupted bool

	// WebPEnabled is false when the run skipped WebP output.
	WebPEnabled bool

	OriginalBytes  int64
	OptimizedBytes int64
	WebPBytes      int64

	Files    []FileReport
	Duration time.Duration

	errs error
}

func (s *Stats) addError(err error) {
	s.errs = multierr.Append(s.errs, err)
}

// Err returns every per-file error of the run combined, or nil.
func (s *Stats) Err() error {
	return s.errs
}

// Errors returns the per-file errors of the run.
func (s *Stats) Errors() []error {
	return multierr.Errors(s.errs)
}

// Processed is the number of files that existed on disk.
func (s *Stats) Processed() int {
	return s.Optimized + s.Failed
}

// FinalBytes is the total the overall reduction is measured against: WebP
// bytes normally, optimized JPEG bytes when WebP output is off.
func (s *Stats) FinalBytes() int64 {
	if !s.WebPEnabled {
		return s.OptimizedBytes
	}
	return s.WebPBytes
}

// OverallReduction is (original - final) / original in percent, or 0 when
// nothing was read.
func (s *Stats) OverallReduction() float64 {
	return display.Reduction(s.OriginalBytes, s.FinalBytes())
}
