package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pario-ai/anggaran/pkg/budget"
	"github.com/pario-ai/anggaran/pkg/extractor"
	"github.com/pario-ai/anggaran/pkg/models"
)

type textArgs struct {
	Text string `json:"text"`
}

type documentsArgs struct {
	Tier  string `json:"tier"`
	Query string `json:"query"`
}

// toolHandler is a function that handles a tool call.
type toolHandler func(ctx context.Context, s *Server, args json.RawMessage) ToolCallResult

// toolHandlers maps tool names to their handlers.
var toolHandlers = map[string]toolHandler{
	"anggaran_extract":   handleExtract,
	"anggaran_analyze":   handleAnalyze,
	"anggaran_documents": handleDocuments,
}

var textSchema = map[string]any{
	"type":     "object",
	"required": []string{"text"},
	"properties": map[string]any{
		"text": map[string]any{
			"type":        "string",
			"description": "Free-form request text, e.g. \"pengadaan laptop Rp 250 juta\"",
		},
	},
}

// allTools is the list of tool definitions exposed via tools/list.
var allTools = []ToolDefinition{
	{
		Name:        "anggaran_extract",
		Description: "Read the Rupiah budget amount from Indonesian text (supports ribu/k, juta/jt, miliar/m).",
		InputSchema: textSchema,
	},
	{
		Name:        "anggaran_analyze",
		Description: "Read the budget from text and return the required document checklist (tier a or b) and templates.",
		InputSchema: textSchema,
	},
	{
		Name:        "anggaran_documents",
		Description: "List the required documents for a tier, or look one up by name.",
		InputSchema: map[string]any{
			"type":     "object",
			"required": []string{"tier"},
			"properties": map[string]any{
				"tier": map[string]any{
					"type":        "string",
					"enum":        []string{"a", "b"},
					"description": "Checklist tier",
				},
				"query": map[string]any{
					"type":        "string",
					"description": "Case-insensitive part of a document name (optional)",
				},
			},
		},
	},
}

func parseText(rawArgs json.RawMessage) (string, bool) {
	var args textArgs
	if len(rawArgs) > 0 {
		_ = json.Unmarshal(rawArgs, &args)
	}
	return args.Text, args.Text != ""
}

func handleExtract(_ context.Context, s *Server, rawArgs json.RawMessage) ToolCallResult {
	text, ok := parseText(rawArgs)
	if !ok {
		return errorResult("text is required")
	}
	m, found := extractor.Explain(text)
	s.metrics.ObserveExtraction(m.Pattern)
	return textResult(formatExtract(budget.ExtractReport(m, found)))
}

func handleAnalyze(_ context.Context, s *Server, rawArgs json.RawMessage) ToolCallResult {
	text, ok := parseText(rawArgs)
	if !ok {
		return errorResult("text is required")
	}
	a := s.mapper.Analyze(text)
	s.metrics.ObserveExtraction(a.Match.Pattern)
	s.metrics.ObserveDecision(a.Outcome.Decision())
	return textResult(formatAnalysis(s.mapper.Report(a)))
}

func handleDocuments(_ context.Context, s *Server, rawArgs json.RawMessage) ToolCallResult {
	var args documentsArgs
	if len(rawArgs) > 0 {
		_ = json.Unmarshal(rawArgs, &args)
	}
	resp, err := s.mapper.Documents(models.Decision(args.Tier), args.Query)
	switch {
	case errors.Is(err, budget.ErrUnknownTier):
		return errorResult("tier must be a or b")
	case errors.Is(err, budget.ErrNoDocument):
		return textResult("Dokumen tidak ditemukan.")
	case err != nil:
		return errorResult(err.Error())
	}
	return textResult(formatDocuments(resp))
}
