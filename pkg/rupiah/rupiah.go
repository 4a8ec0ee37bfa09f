// Package rupiah formats amounts the way id-ID renders IDR: "Rp 300.000.000".
package rupiah

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Symbol is the currency marker prefixed to formatted amounts.
const Symbol = "Rp"

// Format renders amount with no decimal places and dot thousands grouping.
// Fractions are truncated; formatting is display only.
func Format(amount decimal.Decimal) string {
	return Symbol + " " + Group(amount)
}

// Group renders the integer part of amount with dot thousands separators.
func Group(amount decimal.Decimal) string {
	grouped := humanize.BigComma(amount.Truncate(0).BigInt())
	return strings.ReplaceAll(grouped, ",", ".")
}
