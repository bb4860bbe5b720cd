package model

import "fmt"

// RiskLevel represents the risk classification of a scan result.
// Levels are ordered so that a higher value always means a more
// dangerous classification.
//
// Design decision: We use iota-based constants rather than string
// constants for efficiency in comparisons. The ordering is load-bearing:
// risk escalation during a scan takes the maximum of all triggered
// checks, which relies on RiskLow < RiskMedium < RiskHigh.
type RiskLevel int

const (
	// RiskLow indicates no or negligible phishing indicators.
	// This is the starting level of every scan and the final level of
	// a clean verdict.
	RiskLow RiskLevel = iota

	// RiskMedium indicates indicators that warrant caution.
	// Examples: suspicious terms in a hostname, excessive subdomains,
	// unusual mail server hop counts.
	RiskMedium

	// RiskHigh indicates indicators strongly associated with phishing.
	// Examples: IP-literal hosts, typosquatting, failed email
	// authentication, user-reported URLs.
	RiskHigh
)

// String returns a human-readable representation of the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// label returns the lowercase wire form used in JSON output and
// history summaries ("low", "medium", "high").
func (r RiskLevel) label() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the risk level as its lowercase label.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.label() + `"`), nil
}

// UnmarshalJSON parses a lowercase risk label.
// Unknown labels are rejected so corrupted stored verdicts surface
// as errors instead of silently downgrading to RiskLow.
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"low"`:
		*r = RiskLow
	case `"medium"`:
		*r = RiskMedium
	case `"high"`:
		*r = RiskHigh
	default:
		return fmt.Errorf("unknown risk level %s", string(data))
	}
	return nil
}
