package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ironsheep/image-optimizer/internal/display"
	"github.com/ironsheep/image-optimizer/internal/logging"
	"github.com/ironsheep/image-optimizer/internal/optimize"
)

// Processor performs the two per-file transforms.
type Processor interface {
	OptimizeJPEG(path string) (*optimize.Result, error)
	CreateWebP(path string) (*optimize.Result, error)
}

// Runner processes a list of paths sequentially.
type Runner struct {
	proc Processor
	out  io.Writer
	log  *zap.Logger
	webp bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where progress lines and the summary are written.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithoutWebP disables WebP sibling output.
func WithoutWebP() Option {
	return func(r *Runner) { r.webp = false }
}

// NewRunner returns a Runner printing to stdout with WebP output enabled.
func NewRunner(proc Processor, opts ...Option) *Runner {
	r := &Runner{
		proc: proc,
		out:  os.Stdout,
		log:  zap.NewNop(),
		webp: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes paths in order and prints the summary. It stops early, still
// printing the summary, when ctx is cancelled between files.
func (r *Runner) Run(ctx context.Context, paths []string) *Stats {
	start := time.Now()
	stats := &Stats{Total: len(paths), WebPEnabled: r.webp}

	fmt.Fprintln(r.out, "Starting image optimization...")
	fmt.Fprintln(r.out)

	for i, path := range paths {
		if ctx.Err() != nil {
			r.log.Warn("interrupted", zap.Int("remaining", len(paths)-i))
			stats.Interrupted = true
			break
		}
		r.processFile(path, stats)
	}

	stats.Duration = time.Since(start)
	WriteSummary(r.out, stats)

	fields := []zap.Field{
		zap.Int("optimized", stats.Optimized),
		zap.Int("webp", stats.WebP),
		zap.Int("missing", stats.Missing),
		zap.Int("failed", stats.Failed),
		logging.Elapsed(start),
	}
	if stats.Err() != nil {
		r.log.Warn("batch finished with errors", append(fields, logging.Errors("errors", stats.Err())...)...)
	} else {
		r.log.Info("batch finished", fields...)
	}
	return stats
}

// processFile handles one path: stat, optimize in place, then WebP sibling.
func (r *Runner) processFile(path string, stats *Stats) {
	report := FileReport{Path: path}

	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		r.log.Warn("file not found, skipping", zap.String("path", path))
		report.Status = StatusMissing
		stats.Missing++
		stats.Files = append(stats.Files, report)
		return
	}
	if err == nil && fi.IsDir() {
		err = fmt.Errorf("%s is a directory", path)
	}
	if err != nil {
		r.fail(path, fmt.Errorf("failed to stat %s: %w", path, err), &report, stats)
		return
	}

	report.OriginalBytes = fi.Size()
	stats.OriginalBytes += fi.Size()

	res, err := r.proc.OptimizeJPEG(path)
	if err != nil {
		r.log.Error("failed to optimize image", zap.String("path", path), zap.Error(err))
		r.fail(path, err, &report, stats)
		return
	}

	if res.Resized {
		fmt.Fprintf(r.out, "  Resized to %dpx width\n", res.Tier.MaxWidth)
	}
	fmt.Fprintf(r.out, "✓ %s\n", path)
	fmt.Fprintf(r.out, "  Original: %s → Optimized: %s (%s reduction)\n",
		display.FormatMB(res.BeforeBytes), display.FormatMB(res.AfterBytes), display.FormatPercent(res.Reduction()))

	stats.Optimized++
	stats.OptimizedBytes += res.AfterBytes
	report.JPEG = res
	report.Status = StatusOptimized

	if r.webp {
		wr, err := r.proc.CreateWebP(path)
		if err != nil {
			r.log.Error("failed to create webp", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(r.out, "Error creating WebP for %s: %v\n", path, err)
			stats.WebPFailed++
			stats.addError(err)
			report.Status = StatusPartial
			report.Error = err.Error()
		} else {
			fmt.Fprintf(r.out, "  WebP: %s (%s reduction from original)\n",
				display.FormatMB(wr.AfterBytes), display.FormatPercent(wr.Reduction()))
			stats.WebP++
			stats.WebPBytes += wr.AfterBytes
			report.WebP = wr
		}
	}

	stats.Files = append(stats.Files, report)
	fmt.Fprintln(r.out)
}

func (r *Runner) fail(path string, err error, report *FileReport, stats *Stats) {
	fmt.Fprintf(r.out, "Error optimizing %s: %v\n", path, err)
	report.Status = StatusFailed
	report.Error = err.Error()
	stats.Failed++
	stats.addError(err)
	stats.Files = append(stats.Files, *report)
	fmt.Fprintln(r.out)
}
