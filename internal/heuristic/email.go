package heuristic

import (
	"regexp"
	"strings"

	"phishscreen/internal/model"
)

// Reason strings produced by the email pipeline.
const (
	reasonSenderMismatch    = "Sender address mismatch (possible spoofing)"
	reasonFailedAuth        = "Failed email authentication"
	reasonSuspiciousHeaders = "Suspicious email headers detected"
	reasonExcessiveHops     = "Unusual number of mail server hops"
)

// Bracketed address extraction from Return-Path and From fields.
var (
	returnPathPattern = regexp.MustCompile(`(?i)Return-Path:\s*<([^>]+)>`)
	fromPattern       = regexp.MustCompile(`(?i)From:\s*[^<]*<([^>]+)>`)
)

// suspiciousHeaderMarkers are substrings whose presence flags a header
// blob. Each matching marker appends the same reason, so duplicate
// reason strings are possible in one verdict.
var suspiciousHeaderMarkers = []string{
	"x-mailer=php",
	"x-php-script",
	"bulk",
	"spam",
}

// maxReceivedHops is the "Received:" line count above which the hop
// check fires. Legitimate delivery rarely exceeds five hops.
const maxReceivedHops = 5

// ScanEmail classifies a raw email header blob. It never fails: a blob
// with no matching indicator yields the safe sentinel verdict. All
// checks are independent; none short-circuits another.
func (s *Screener) ScanEmail(headers string) model.ScanVerdict {
	var verdict model.ScanVerdict
	lower := strings.ToLower(headers)

	// Spoofed sender: the bracketed Return-Path and From addresses must
	// agree. When either field is absent or unextractable the check is
	// silently skipped.
	if strings.Contains(lower, "return-path") && strings.Contains(lower, "from") {
		returnPath := returnPathPattern.FindStringSubmatch(headers)
		from := fromPattern.FindStringSubmatch(headers)
		if returnPath != nil && from != nil && returnPath[1] != from[1] {
			verdict.AddReason(reasonSenderMismatch, model.RiskHigh)
		}
	}

	if strings.Contains(lower, "authentication-results") {
		if strings.Contains(lower, "spf=fail") || strings.Contains(lower, "dkim=fail") {
			verdict.AddReason(reasonFailedAuth, model.RiskHigh)
		}
	}

	for _, marker := range suspiciousHeaderMarkers {
		if strings.Contains(lower, marker) {
			verdict.AddReason(reasonSuspiciousHeaders, model.RiskMedium)
		}
	}

	// The hop count matches the literal token case-sensitively: a
	// lowercased "received:" is itself nonstandard and not counted.
	if strings.Count(headers, "Received:") > maxReceivedHops {
		verdict.AddReason(reasonExcessiveHops, model.RiskMedium)
	}

	verdict.Finalize()
	return verdict
}
