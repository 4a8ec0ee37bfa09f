package budget

import (
	"github.com/pario-ai/anggaran/pkg/models"
	"github.com/shopspring/decimal"
)

// Outcome is the result of mapping an extracted budget to a checklist.
// It is one of NotFound, TierA or TierB.
type Outcome interface {
	Decision() models.Decision
	isOutcome()
}

// NotFound means no budget could be read from the text.
type NotFound struct{}

// TierA is a budget below the threshold.
type TierA struct {
	Amount    decimal.Decimal
	Documents []string
}

// TierB is a budget at or above the threshold.
type TierB struct {
	Amount    decimal.Decimal
	Documents []string
}

func (NotFound) Decision() models.Decision { return models.DecisionNone }
func (TierA) Decision() models.Decision    { return models.DecisionA }
func (TierB) Decision() models.Decision    { return models.DecisionB }

func (NotFound) isOutcome() {}
func (TierA) isOutcome()    {}
func (TierB) isOutcome()    {}

// TierOf returns the decision for o. A nil Outcome counts as NotFound.
func TierOf(o Outcome) models.Decision {
	if o == nil {
		return models.DecisionNone
	}
	return o.Decision()
}

// AmountOf returns the budget carried by o, if any.
func AmountOf(o Outcome) (decimal.Decimal, bool) {
	switch v := o.(type) {
	case TierA:
		return v.Amount, true
	case TierB:
		return v.Amount, true
	default:
		return decimal.Zero, false
	}
}

// DocumentsOf returns the required documents for o; nil for NotFound.
func DocumentsOf(o Outcome) []string {
	switch v := o.(type) {
	case TierA:
		return v.Documents
	case TierB:
		return v.Documents
	default:
		return nil
	}
}
