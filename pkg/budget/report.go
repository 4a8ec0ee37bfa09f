package budget

import (
	"errors"
	"fmt"

	"github.com/pario-ai/anggaran/pkg/extractor"
	"github.com/pario-ai/anggaran/pkg/models"
	"github.com/pario-ai/anggaran/pkg/rupiah"
)

var (
	// ErrUnknownTier is returned for a tier other than a or b.
	ErrUnknownTier = errors.New("unknown tier")
	// ErrNoDocument is returned when a query matches no document.
	ErrNoDocument = errors.New("no matching document")
)

// ExtractReport renders an extraction result for JSON output.
func ExtractReport(m extractor.Match, found bool) models.ExtractResponse {
	resp := models.ExtractResponse{Found: found, Normalized: m.Normalized}
	if found {
		resp.Amount = m.Amount.String()
		resp.Formatted = rupiah.Format(m.Amount)
		resp.Pattern = m.Pattern
	}
	return resp
}

// Report renders an Analysis for JSON output.
// Documents and Templates are never nil so they encode as [].
func (m *Mapper) Report(a Analysis) models.AnalyzeResponse {
	detected, decision := m.Message(a.Outcome)
	resp := models.AnalyzeResponse{
		Found:     a.Found(),
		Tier:      a.Outcome.Decision(),
		Kind:      a.Kind,
		Detected:  detected,
		Decision:  decision,
		Documents: DocumentsOf(a.Outcome),
		Templates: a.Templates,
	}
	if amount, ok := AmountOf(a.Outcome); ok {
		resp.Amount = amount.String()
		resp.Formatted = rupiah.Format(amount)
	}
	if resp.Documents == nil {
		resp.Documents = []string{}
	}
	if resp.Templates == nil {
		resp.Templates = []string{}
	}
	return resp
}

// Documents lists the checklist for tier. A non-empty query narrows the
// result to the first document containing it.
func (m *Mapper) Documents(tier models.Decision, query string) (models.DocumentsResponse, error) {
	cl, ok := m.Checklist(tier)
	if !ok {
		return models.DocumentsResponse{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	resp := models.DocumentsResponse{Tier: tier, Documents: clone(cl.Documents)}
	if query == "" {
		return resp, nil
	}
	doc, ok := FindDocument(cl.Documents, query)
	if !ok {
		return resp, fmt.Errorf("%w: %q", ErrNoDocument, query)
	}
	resp.Match = doc
	return resp, nil
}
