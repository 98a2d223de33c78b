package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsheep/image-optimizer/internal/optimize"
	"github.com/ironsheep/image-optimizer/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the optimizer as MCP tools over stdin/stdout",
	Long: `mcp runs a Model Context Protocol server on stdio. Configure it in an MCP
client to let it inspect and optimize images. stdout carries the protocol;
logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, log, cleanup, err := setup(cmd, nil)
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

	log.Info("mcp server listening on stdio", zap.String("version", Version))
	err = server.New(opt, log, Version).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("mcp server stopped by signal")
		return nil
	}
	return err
}
