package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pario-ai/anggaran/pkg/logging"
	"github.com/pario-ai/anggaran/pkg/metrics"
	"github.com/pario-ai/anggaran/pkg/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(load configLoader) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}

			logger, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			srv := server.New(cfg, cfg.Mapper(), metrics.New(), logger)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("starting anggaran",
				zap.String("version", version),
				zap.String("threshold", cfg.Decision.Threshold.String()),
				zap.Bool("metrics", cfg.Metrics.Enabled),
			)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")
	return cmd
}
