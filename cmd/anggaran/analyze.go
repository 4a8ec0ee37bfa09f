package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(load configLoader) *cobra.Command {
	var (
		asJSON      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Decide the document checklist for a budget request",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if interactive {
				if text, err = promptText(text); err != nil {
					return err
				}
			}
			if strings.TrimSpace(text) == "" {
				return errors.New("no text given: pass it as arguments or use --interactive")
			}

			mapper := cfg.Mapper()
			resp := mapper.Report(mapper.Analyze(text))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			_, err = fmt.Fprintln(out, renderAnalysis(resp))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decision as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for the request text")
	return cmd
}

func promptText(initial string) (string, error) {
	text := initial
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Jelaskan kebutuhan pengadaan Anda").
				Description("Sertakan budget, misalnya: pengadaan laptop Rp 250 juta").
				Value(&text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("teks tidak boleh kosong")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return text, nil
}
