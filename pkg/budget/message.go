package budget

import (
	"fmt"

	"github.com/pario-ai/anggaran/pkg/rupiah"
)

const (
	msgNotFound = "Tidak ada budget yang ditemukan."
	msgClarify  = "Silakan spesifikasikan budget Anda dengan jelas."
)

// Message returns the user-facing detection and decision lines for o.
func (m *Mapper) Message(o Outcome) (detected, decision string) {
	limit := rupiah.Format(m.threshold)
	switch v := o.(type) {
	case TierA:
		return "Budget yang terdeteksi: " + rupiah.Format(v.Amount),
			fmt.Sprintf("Keputusan: a (Budget kurang dari %s)", limit)
	case TierB:
		return "Budget yang terdeteksi: " + rupiah.Format(v.Amount),
			fmt.Sprintf("Keputusan: b (Budget %s atau lebih)", limit)
	default:
		return msgNotFound, msgClarify
	}
}
