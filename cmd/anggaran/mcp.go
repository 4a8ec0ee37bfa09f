package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pario-ai/anggaran/pkg/logging"
	"github.com/pario-ai/anggaran/pkg/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start anggaran as an MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			// stdout carries the protocol; logs go to stderr.
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := mcp.New(cfg.Mapper(), nil, logger, version)
			return srv.Run(ctx, os.Stdin, os.Stdout)
		},
	}
}
