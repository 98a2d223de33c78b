package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/ironsheep/image-optimizer/internal/display"
	"github.com/ironsheep/image-optimizer/internal/optimize"
)

var tierCmd = &cobra.Command{
	Use:   "tier [file...]",
	Short: "Show the quality and width cap each file would get, without changing it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTier,
}

func init() {
	rootCmd.AddCommand(tierCmd)
}

func runTier(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var failed error
	for _, path := range args {
		fi, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			failed = multierr.Append(failed, err)
			continue
		}
		tier := optimize.SelectTier(fi.Size())
		fmt.Fprintf(out, "%s: %s → %s\n", path, display.FormatMB(fi.Size()), tier)
	}
	return failed
}
