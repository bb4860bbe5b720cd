package model

import "time"

// ReportRecord is a ledger entry for a user-reported URL.
//
// The URL is the exact string the user submitted: lookups against the
// ledger are exact-string matches with no normalization. This is
// intentionally asymmetric with the trust check (which does normalize)
// so that reporting "https://evil.example/login" does not taint
// "https://evil.example/login/" or any near variant.
type ReportRecord struct {
	// URL is the exact, unnormalized report key.
	URL string `json:"url"`

	// ReportCount is the number of times this exact URL has been
	// reported. Always >= 1; it increments on every repeat report.
	ReportCount int `json:"reportCount"` //nolint:tagliatelle // matches the persisted ledger format

	// Timestamp is the instant of the most recent report.
	// Persisted as integer milliseconds since the Unix epoch.
	Timestamp time.Time `json:"timestamp"`
}

// ScanHistoryEntry is a summarized past scan shown by the history
// command. It is presentation data derived from a ScanVerdict, not part
// of the scan pipelines themselves.
type ScanHistoryEntry struct {
	// Type is the kind of scan: "URL" or "Email".
	Type string `json:"type"`

	// Target is the scanned input, display-truncated for email blobs.
	Target string `json:"target"`

	// Result is the one-line verdict summary (ScanVerdict.Summary).
	Result string `json:"result"`

	// Date is when the scan happened.
	Date time.Time `json:"date"`
}

// Scan history entry types.
const (
	ScanTypeURL   = "URL"
	ScanTypeEmail = "Email"
)

// emailTargetLimit is how much of an email header blob is kept as the
// history display target.
const emailTargetLimit = 30

// NewURLHistoryEntry builds a history entry for a completed URL scan.
func NewURLHistoryEntry(rawURL string, verdict *ScanVerdict, at time.Time) ScanHistoryEntry {
	return ScanHistoryEntry{
		Type:   ScanTypeURL,
		Target: rawURL,
		Result: verdict.Summary(),
		Date:   at,
	}
}

// NewEmailHistoryEntry builds a history entry for a completed email
// header scan. Header blobs are long and multi-line, so only a short
// prefix is kept as the display target.
func NewEmailHistoryEntry(headers string, verdict *ScanVerdict, at time.Time) ScanHistoryEntry {
	target := headers
	if len(target) > emailTargetLimit {
		target = target[:emailTargetLimit] + "..."
	}
	return ScanHistoryEntry{
		Type:   ScanTypeEmail,
		Target: target,
		Result: verdict.Summary(),
		Date:   at,
	}
}
