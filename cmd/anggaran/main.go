package main

import (
	"fmt"
	"os"

	"github.com/pario-ai/anggaran/pkg/config"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "anggaran",
		Short:         "Anggaran — read procurement budgets and pick the document checklist",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (defaults built in)")

	load := func() (*config.Config, error) {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}

	root.AddCommand(
		newExtractCmd(),
		newAnalyzeCmd(load),
		newDocumentsCmd(load),
		newServeCmd(load),
		newMCPCmd(load),
	)
	return root
}

// configLoader returns the config selected by the global --config flag.
type configLoader func() (*config.Config, error)
