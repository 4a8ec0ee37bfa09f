package models

// Decision identifies which document checklist a budget falls into.
type Decision string

const (
	DecisionNone Decision = "none"
	DecisionA    Decision = "a"
	DecisionB    Decision = "b"
)

// Kind is the procurement category mentioned in a request.
type Kind string

const (
	KindPengadaan Kind = "pengadaan"
	KindLisensi   Kind = "lisensi"
)

// Checklist lists the documents required for one decision tier, plus the
// document templates to start from for each procurement kind.
type Checklist struct {
	Documents []string          `json:"documents" yaml:"documents"`
	Templates map[Kind][]string `json:"templates,omitempty" yaml:"templates,omitempty"`
}
