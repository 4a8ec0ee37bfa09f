package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pario-ai/anggaran/pkg/budget"
	"github.com/pario-ai/anggaran/pkg/extractor"
	"github.com/pario-ai/anggaran/pkg/rupiah"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	var (
		format  bool
		explain bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Print the budget amount found in text",
		Long: `Print the budget amount found in text.

With arguments, they are joined with spaces and read as one text.
Without arguments, each line of stdin is read as a separate text.
Texts without a budget print "not found".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			one := func(text string) error {
				m, found := extractor.Explain(text)
				if asJSON {
					return json.NewEncoder(out).Encode(budget.ExtractReport(m, found))
				}
				return writeExtract(out, m, found, format, explain)
			}

			if len(args) > 0 {
				return one(strings.Join(args, " "))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := one(scanner.Text()); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().BoolVarP(&format, "format", "f", false, "print amounts as Rupiah (Rp 1.000.000)")
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "also print the matched pattern and normalized text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per text")
	return cmd
}

func writeExtract(w io.Writer, m extractor.Match, found, format, explain bool) error {
	amount := "not found"
	if found {
		amount = m.Amount.String()
		if format {
			amount = rupiah.Format(m.Amount)
		}
	}
	if !explain {
		_, err := fmt.Fprintln(w, amount)
		return err
	}
	pattern := m.Pattern
	if pattern == "" {
		pattern = "-"
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%q\n", amount, pattern, m.Normalized)
	return err
}
