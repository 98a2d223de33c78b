package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-optimizer/internal/display"
	"github.com/ironsheep/image-optimizer/internal/encode"
	"github.com/ironsheep/image-optimizer/internal/imaging"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Inspect an image: dimensions, color mode, size and JPEG encoding",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := imaging.LoadImageInfo(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Format:     %s\n", info.Format)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Mode:       %s (alpha: %v)\n", info.Mode, info.HasAlpha)
	fmt.Fprintf(out, "File size:  %d bytes (%s)\n", info.FileSizeBytes, display.FormatMB(info.FileSizeBytes))

	if info.Format == "jpeg" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		ji, err := encode.InspectJPEG(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		fmt.Fprintf(out, "Encoding:   %s (SOF 0x%02X)\n", scanMode(ji.Progressive), ji.SOF)
		fmt.Fprintf(out, "Components: %d (%s)\n", ji.Components, ji.ColorSpace())
	}
	return nil
}

func scanMode(progressive bool) string {
	if progressive {
		return "progressive"
	}
	return "baseline"
}
