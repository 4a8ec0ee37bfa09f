package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pario-ai/anggaran/pkg/models"
)

var (
	colorYellow = lipgloss.Color("#D0A215")
	colorBlue   = lipgloss.Color("#4385BE")
	colorGreen  = lipgloss.Color("#879A39")
	colorMuted  = lipgloss.Color("#6F6E69")
)

var (
	notFoundStyle = lipgloss.NewStyle().Foreground(colorYellow)
	tierAStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	tierBStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	headerStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

func tierStyle(tier models.Decision) lipgloss.Style {
	switch tier {
	case models.DecisionA:
		return tierAStyle
	case models.DecisionB:
		return tierBStyle
	default:
		return notFoundStyle
	}
}

// renderAnalysis renders a decision as a bordered card.
func renderAnalysis(r models.AnalyzeResponse) string {
	style := tierStyle(r.Tier)

	var b strings.Builder
	b.WriteString(style.Render(r.Detected) + "\n")
	b.WriteString(style.Render(r.Decision))
	if !r.Found {
		return boxStyle.BorderForeground(colorYellow).Render(b.String())
	}

	b.WriteString("\n\n" + headerStyle.Render("Dokumen yang diperlukan") + "\n")
	b.WriteString(renderList(r.Documents))
	if len(r.Templates) > 0 {
		b.WriteString("\n\n" + headerStyle.Render("Template") + " " + mutedStyle.Render("("+string(r.Kind)+")") + "\n")
		b.WriteString(renderList(r.Templates))
	}
	return boxStyle.Render(b.String())
}

func renderList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%s %s", mutedStyle.Render(fmt.Sprintf("%2d.", i+1)), item)
	}
	return strings.Join(lines, "\n")
}
