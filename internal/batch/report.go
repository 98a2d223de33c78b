package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Totals is the aggregate section of a Report.
type Totals struct {
	Files            int     `json:"files" yaml:"files"`
	Optimized        int     `json:"optimized" yaml:"optimized"`
	WebP             int     `json:"webp" yaml:"webp"`
	Missing          int     `json:"missing" yaml:"missing"`
	Failed           int     `json:"failed" yaml:"failed"`
	WebPFailed       int     `json:"webp_failed" yaml:"webp_failed"`
	OriginalBytes    int64   `json:"original_bytes" yaml:"original_bytes"`
	OptimizedBytes   int64   `json:"optimized_bytes" yaml:"optimized_bytes"`
	WebPBytes        int64   `json:"webp_bytes" yaml:"webp_bytes"`
	OverallReduction float64 `json:"overall_reduction_percent" yaml:"overall_reduction_percent"`
}

// Report is the exportable form of a run.
type Report struct {
	RunID       string       `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Duration    string       `json:"duration" yaml:"duration"`
	Interrupted bool         `json:"interrupted,omitempty" yaml:"interrupted,omitempty"`
	Totals      Totals       `json:"totals" yaml:"totals"`
	Files       []FileReport `json:"files" yaml:"files"`
	Errors      []string     `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewReport converts run stats into a Report. Each report gets a
// time-ordered run ID.
func NewReport(s *Stats) *Report {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	r := &Report{
		RunID:       id.String(),
		GeneratedAt: time.Now().UTC(),
		Duration:    s.Duration.Round(time.Millisecond).String(),
		Interrupted: s.Interrupted,
		Totals: Totals{
			Files:            s.Total,
			Optimized:        s.Optimized,
			WebP:             s.WebP,
			Missing:          s.Missing,
			Failed:           s.Failed,
			WebPFailed:       s.WebPFailed,
			OriginalBytes:    s.OriginalBytes,
			OptimizedBytes:   s.OptimizedBytes,
			WebPBytes:        s.WebPBytes,
			OverallReduction: s.OverallReduction(),
		},
		Files: s.Files,
	}
	if r.Files == nil {
		r.Files = []FileReport{}
	}
	for _, err := range s.Errors() {
		r.Errors = append(r.Errors, err.Error())
	}
	return r
}

// WriteReport writes the run report to path as JSON (.json) or YAML
// (.yaml, .yml).
func WriteReport(path string, s *Stats) error {
	report := NewReport(s)

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(report, "", "  ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		data, err = yaml.Marshal(report)
	default:
		return fmt.Errorf("unsupported report format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
