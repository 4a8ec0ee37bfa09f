package rupiah

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "Rp 0"},
		{decimal.NewFromInt(999), "Rp 999"},
		{decimal.NewFromInt(1000), "Rp 1.000"},
		{decimal.NewFromInt(300_000_000), "Rp 300.000.000"},
		{decimal.NewFromInt(1_234_567), "Rp 1.234.567"},
		{decimal.RequireFromString("1250.75"), "Rp 1.250"},
		{decimal.RequireFromString("99999999999999999999000000000"), "Rp 99.999.999.999.999.999.999.000.000.000"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
