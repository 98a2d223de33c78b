package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-optimizer/internal/encode"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "optimize-images %s\n", Version)
		fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  libvips:    %s\n", encode.VipsVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
