package budget

import (
	"strings"

	"github.com/pario-ai/anggaran/pkg/extractor"
	"github.com/pario-ai/anggaran/pkg/models"
	"github.com/shopspring/decimal"
)

// DefaultThreshold is the budget, in Rupiah, from which the larger checklist applies.
var DefaultThreshold = decimal.NewFromInt(300_000_000)

// DefaultTierA is the checklist for budgets below the threshold.
func DefaultTierA() models.Checklist {
	return models.Checklist{
		Documents: []string{"BAP", "Review Pekerjaan", "RAB", "RKS"},
		Templates: map[models.Kind][]string{
			models.KindPengadaan: {
				"Nota Dinas Izin Prinsip Pengadaan (SVP)",
				"Nota Dinas Izin Prinsip Pengadaan (D. Bidang)",
				"RAB Pengadaan",
				"RKS Pengadaan",
			},
			models.KindLisensi: {
				"Nota Dinas Izin Prinsip Pengadaan (SVP)",
				"Nota Dinas Izin Prinsip Pengadaan (D. Bidang)",
				"RAB Pengadaan",
				"RKS Lisensi (Dir. Bidang)",
			},
		},
	}
}

// DefaultTierB is the checklist for budgets at or above the threshold.
func DefaultTierB() models.Checklist {
	return models.Checklist{
		Documents: []string{"BAP", "Draf Nota Dinas Izin Prinsip", "RAB", "RKS", "Nota Dinas Izin Prinsip"},
		Templates: map[models.Kind][]string{
			models.KindPengadaan: {
				"RAB Pengadaan (Dir. Bidang)",
				"RKS Pengadaan (Dir. Bidang)",
				"Review Pengajuan Pekerjaan Pengadaan Barang",
			},
			models.KindLisensi: {
				"RAB Lisensi (Dir. Bidang)",
				"RKS Lisensi (Dir. Bidang)",
			},
		},
	}
}

// Mapper turns extracted budgets into checklist decisions.
// It holds no mutable state and is safe for concurrent use.
type Mapper struct {
	threshold decimal.Decimal
	tierA     models.Checklist
	tierB     models.Checklist
}

// New creates a Mapper with the given threshold and checklists.
func New(threshold decimal.Decimal, tierA, tierB models.Checklist) *Mapper {
	return &Mapper{threshold: threshold, tierA: tierA, tierB: tierB}
}

// Default returns a Mapper using DefaultThreshold and the default checklists.
func Default() *Mapper {
	return New(DefaultThreshold, DefaultTierA(), DefaultTierB())
}

// Threshold returns the tier boundary. Amounts equal to it fall in tier B.
func (m *Mapper) Threshold() decimal.Decimal {
	return m.threshold
}

// Checklist returns the checklist for a decision.
func (m *Mapper) Checklist(d models.Decision) (models.Checklist, bool) {
	switch d {
	case models.DecisionA:
		return m.tierA, true
	case models.DecisionB:
		return m.tierB, true
	default:
		return models.Checklist{}, false
	}
}

// Decide maps an extraction result to an Outcome.
func (m *Mapper) Decide(amount decimal.Decimal, found bool) Outcome {
	if !found {
		return NotFound{}
	}
	if amount.GreaterThanOrEqual(m.threshold) {
		return TierB{Amount: amount, Documents: clone(m.tierB.Documents)}
	}
	return TierA{Amount: amount, Documents: clone(m.tierA.Documents)}
}

// Analysis is the full result of reading one description.
type Analysis struct {
	Text      string
	Outcome   Outcome
	Kind      models.Kind
	Templates []string
	Match     extractor.Match
}

// Found reports whether a budget was read from the text.
func (a Analysis) Found() bool {
	_, ok := a.Outcome.(NotFound)
	return !ok
}

// Analyze extracts the budget from text, decides the tier and picks the
// templates for the procurement kind the text mentions.
func (m *Mapper) Analyze(text string) Analysis {
	match, found := extractor.Explain(text)
	a := Analysis{
		Text:    text,
		Outcome: m.Decide(match.Amount, found),
		Kind:    DetectKind(text),
		Match:   match,
	}
	if cl, ok := m.Checklist(a.Outcome.Decision()); ok {
		a.Templates = clone(cl.Templates[a.Kind])
	}
	return a
}

// DetectKind reports whether text is about a licence or a general procurement.
// Licence wins when both words appear.
func DetectKind(text string) models.Kind {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "lisensi") {
		return models.KindLisensi
	}
	return models.KindPengadaan
}

// FindDocument returns the first document whose name contains query, ignoring case.
func FindDocument(docs []string, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d), q) {
			return d, true
		}
	}
	return "", false
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
