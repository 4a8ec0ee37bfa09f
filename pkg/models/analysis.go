package models

// AnalyzeRequest is the body accepted by the extract and analyze endpoints.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// ExtractResponse reports the raw extraction result.
// Amount is a decimal string so values beyond float64 precision survive JSON.
type ExtractResponse struct {
	Found      bool   `json:"found"`
	Amount     string `json:"amount,omitempty"`
	Formatted  string `json:"formatted,omitempty"`
	Pattern    string `json:"pattern,omitempty"`
	Normalized string `json:"normalized"`
}

// AnalyzeResponse is the full decision for a description.
// Detected and Decision are the two user-facing message lines.
type AnalyzeResponse struct {
	Found     bool     `json:"found"`
	Amount    string   `json:"amount,omitempty"`
	Formatted string   `json:"formatted,omitempty"`
	Tier      Decision `json:"tier"`
	Kind      Kind     `json:"kind"`
	Detected  string   `json:"detected"`
	Decision  string   `json:"decision"`
	Documents []string `json:"documents"`
	Templates []string `json:"templates"`
}

// DocumentsResponse lists a checklist, optionally narrowed to one match.
type DocumentsResponse struct {
	Tier      Decision `json:"tier"`
	Documents []string `json:"documents"`
	Match     string   `json:"match,omitempty"`
}
