package model

// NoFindingsReason is the sentinel reason attached to a verdict when no
// heuristic check fired. A verdict's Reasons list is never empty: either
// it holds the triggered reasons or exactly this sentinel.
const NoFindingsReason = "No suspicious patterns detected"

// ReportedReason is appended to a displayed verdict when the user
// reports the scanned URL. This is a display-state patch applied by the
// caller, not something the scan pipelines produce.
const ReportedReason = "URL has been reported by users"

// ScanVerdict is the outcome of scanning a URL or an email header blob.
// Both pipelines produce the same shape.
type ScanVerdict struct {
	// IsSafe is true iff zero heuristic checks fired during the scan.
	IsSafe bool `json:"is_safe"`

	// Risk is the final risk classification: the maximum risk
	// contributed by any single triggered check.
	Risk RiskLevel `json:"risk"`

	// Reasons holds the human-readable explanation for the verdict in
	// the order checks fired. Never empty after Finalize: a clean scan
	// carries NoFindingsReason. Duplicate strings are possible (the
	// email pipeline appends one reason per matching header marker).
	Reasons []string `json:"reasons"`

	// Reported is true once the user has manually reported the scanned
	// URL and the verdict has been patched via MarkReported.
	Reported bool `json:"reported"`
}

// AddReason records a triggered check. Risk only ever escalates: the
// verdict keeps the maximum risk seen across all triggered checks, so a
// Medium check firing after a High one never lowers the classification.
func (v *ScanVerdict) AddReason(reason string, risk RiskLevel) {
	v.Reasons = append(v.Reasons, reason)
	if risk > v.Risk {
		v.Risk = risk
	}
}

// Finalize derives IsSafe from the accumulated reasons and substitutes
// the sentinel reason when no check fired. Must be called exactly once,
// after the last check has run.
func (v *ScanVerdict) Finalize() {
	v.IsSafe = len(v.Reasons) == 0
	if v.IsSafe {
		v.Reasons = []string{NoFindingsReason}
	}
}

// MarkReported applies the display-state patch after a manual report:
// the verdict flips to unsafe at high risk with ReportedReason appended.
// It does not re-run any pipeline.
func (v *ScanVerdict) MarkReported() {
	v.IsSafe = false
	v.Risk = RiskHigh
	v.Reasons = append(v.Reasons, ReportedReason)
	v.Reported = true
}

// Summary returns the one-line result string used in scan history:
// "Safe" or "Suspicious (<risk> risk)".
func (v *ScanVerdict) Summary() string {
	if v.IsSafe {
		return "Safe"
	}
	return "Suspicious (" + v.Risk.label() + " risk)"
}
