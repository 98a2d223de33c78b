package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsheep/image-optimizer/internal/batch"
	"github.com/ironsheep/image-optimizer/internal/config"
	"github.com/ironsheep/image-optimizer/internal/logging"
	"github.com/ironsheep/image-optimizer/internal/optimize"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "optimize-images [image...]",
	Short: "Recompress images in place and write WebP versions",
	Long: `optimize-images recompresses each image as a progressive JPEG at its
original path and writes a .webp file next to it. Quality and maximum width
are chosen from the file size.

With no arguments the built-in list of img/ paths is processed. Originals are
overwritten without a backup.

Every flag can also be set through an OPTIMIZE_IMAGES_<FLAG> environment
variable, e.g. OPTIMIZE_IMAGES_JPEG_ENCODER=native.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runOptimize,
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// setup loads the config for cmd and builds the logger. The returned cleanup
// must be called before exit.
func setup(cmd *cobra.Command, args []string) (*config.Config, *zap.Logger, func(), error) {
	cfg, err := config.Load(cmd.Flags(), args)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, cleanup, err := logging.New(cfg.LogConfig)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debug("optimize-images starting",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("commit", GitCommit),
		zap.String("jpeg_encoder", cfg.JPEGEncoder),
		zap.String("resizer", cfg.Resizer),
	)
	return cfg, log, cleanup, nil
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, log, cleanup, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer cleanup()

	opt, err := optimize.FromConfig(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	opts := []batch.Option{
		batch.WithOutput(cmd.OutOrStdout()),
		batch.WithLogger(log),
	}
	if !cfg.WebP {
		opts = append(opts, batch.WithoutWebP())
	}

	stats := batch.NewRunner(opt, opts...).Run(ctx, cfg.ResolvedPaths())

	if cfg.Report != "" {
		if err := batch.WriteReport(cfg.Report, stats); err != nil {
			return err
		}
		log.Info("report written", zap.String("path", cfg.Report))
	}
	return nil
}
