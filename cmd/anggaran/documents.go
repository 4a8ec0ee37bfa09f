package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pario-ai/anggaran/pkg/budget"
	"github.com/pario-ai/anggaran/pkg/models"
	"github.com/spf13/cobra"
)

func newDocumentsCmd(load configLoader) *cobra.Command {
	var tier string

	cmd := &cobra.Command{
		Use:   "documents [query]",
		Short: "List the required documents, or look one up by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			mapper := cfg.Mapper()

			var query string
			if len(args) == 1 {
				query = args[0]
			}

			tiers := []models.Decision{models.DecisionA, models.DecisionB}
			if tier != "" {
				tiers = []models.Decision{models.Decision(strings.ToLower(tier))}
			}

			out := cmd.OutOrStdout()
			matched := false
			for _, t := range tiers {
				resp, err := mapper.Documents(t, query)
				if errors.Is(err, budget.ErrNoDocument) {
					continue
				}
				if err != nil {
					return err
				}
				style := tierStyle(t)
				if query != "" {
					matched = true
					fmt.Fprintf(out, "%s %s\n", style.Render("["+string(t)+"]"), resp.Match)
					continue
				}
				fmt.Fprintln(out, style.Render("Tier "+string(t)))
				fmt.Fprintln(out, renderList(resp.Documents))
			}

			if query != "" && !matched {
				fmt.Fprintln(out, notFoundStyle.Render("Dokumen tidak ditemukan."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tier, "tier", "t", "", "checklist tier: a or b (default both)")
	return cmd
}
