package mcp

import (
	"fmt"
	"strings"

	"github.com/pario-ai/anggaran/pkg/models"
)

// formatExtract formats an extraction result as text.
func formatExtract(r models.ExtractResponse) string {
	if !r.Found {
		return fmt.Sprintf("No budget found.\nNormalized: %s\n", r.Normalized)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %s\n", "Amount", r.Amount)
	fmt.Fprintf(&b, "%-12s %s\n", "Formatted", r.Formatted)
	fmt.Fprintf(&b, "%-12s %s\n", "Pattern", r.Pattern)
	fmt.Fprintf(&b, "%-12s %s\n", "Normalized", r.Normalized)
	return b.String()
}

// formatAnalysis formats a decision with its checklist and templates.
func formatAnalysis(r models.AnalyzeResponse) string {
	var b strings.Builder
	b.WriteString(r.Detected + "\n")
	b.WriteString(r.Decision + "\n")
	if !r.Found {
		return b.String()
	}

	b.WriteString("\nDokumen yang diperlukan:\n")
	writeList(&b, r.Documents)
	if len(r.Templates) > 0 {
		fmt.Fprintf(&b, "\nTemplate (%s):\n", r.Kind)
		writeList(&b, r.Templates)
	}
	return b.String()
}

// formatDocuments formats a checklist or a single lookup result.
func formatDocuments(r models.DocumentsResponse) string {
	if r.Match != "" {
		return fmt.Sprintf("Dokumen ditemukan: %s\n", r.Match)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Dokumen tier %s:\n", r.Tier)
	writeList(&b, r.Documents)
	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%2d. %s\n", i+1, item)
	}
}
