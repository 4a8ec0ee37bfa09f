// Package extractor pulls a Rupiah budget figure out of free-form Indonesian text.
package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/width"
)

// Pattern pairs a digit-plus-suffix shape with the multiplier it implies.
type Pattern struct {
	Name       string
	Re         *regexp.Regexp
	Multiplier decimal.Decimal
}

// Match describes how a budget was found.
type Match struct {
	Pattern    string          `json:"pattern"`
	Digits     string          `json:"digits"`
	Normalized string          `json:"normalized"`
	Amount     decimal.Decimal `json:"amount"`
}

var (
	// Decimal fraction: Indonesian writes "1.000.000,00".
	fractionPattern = regexp.MustCompile(`,\d+`)

	// Order matters: the bare-number pattern would otherwise match the
	// numeral prefix of every suffixed amount.
	patterns = []Pattern{
		{Name: "billion", Re: regexp.MustCompile(`(\d+)(m|miliar)`), Multiplier: decimal.New(1, 9)},
		{Name: "million", Re: regexp.MustCompile(`(\d+)(jt|juta|million)`), Multiplier: decimal.New(1, 6)},
		{Name: "thousand", Re: regexp.MustCompile(`(\d+)(k|ribu)`), Multiplier: decimal.New(1, 3)},
		{Name: "bare", Re: regexp.MustCompile(`(\d+)`), Multiplier: decimal.New(1, 0)},
	}
)

// Patterns returns the magnitude patterns in the order they are tried.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// Extract returns the first budget amount recognised in text.
// The boolean is false when no amount was found; a zero amount with true
// means the text literally said zero.
func Extract(text string) (decimal.Decimal, bool) {
	m, ok := Explain(text)
	if !ok {
		return decimal.Zero, false
	}
	return m.Amount, true
}

// Explain is Extract with the matched pattern and normalised text attached.
func Explain(text string) (Match, bool) {
	if text == "" {
		return Match{}, false
	}

	normalized := Normalize(text)
	for _, p := range patterns {
		sub := p.Re.FindStringSubmatch(normalized)
		if sub == nil {
			continue
		}
		digits := sub[1]
		value, err := decimal.NewFromString(digits)
		if err != nil {
			// \d+ only captures ASCII digits, so this is unreachable.
			continue
		}
		return Match{
			Pattern:    p.Name,
			Digits:     digits,
			Normalized: normalized,
			Amount:     value.Mul(p.Multiplier),
		}, true
	}
	return Match{Normalized: normalized}, false
}

// Normalize folds text into the form the patterns are matched against:
// full-width forms narrowed, lowercase, no decimal fractions, no "rp",
// no whitespace, no dots. Other compatibility characters such as
// superscripts or circled digits are left alone and never match \d.
func Normalize(text string) string {
	s := strings.ToLower(width.Fold.String(text))
	s = fractionPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "rp", "")
	return strings.Map(func(r rune) rune {
		if r == '.' || r == '\ufeff' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
