package heuristic

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"

	"phishscreen/internal/model"
)

// Reason strings produced by the URL pipeline.
const (
	reasonInvalidURL       = "Invalid URL format"
	reasonTrustedDomain    = "Domain is verified and trusted"
	reasonIPAddressHost    = "URL contains IP address instead of domain name"
	reasonSuspiciousTerms  = "Domain contains suspicious terms"
	reasonExcessiveLabels  = "URL contains excessive subdomains"
	reasonInsecureScheme   = "Connection is not secure (HTTP)"
	reasonSuspiciousChars  = "URL contains suspicious characters"
	reasonTyposquatting    = "Domain is suspiciously similar to a trusted website (possible typosquatting)"
	reasonPhishingPatterns = "URL matches known phishing patterns"
)

// ipv4HostPattern matches a bare dotted-quad host. Octet ranges are not
// validated; any all-numeric dotted-quad hostname is suspect.
var ipv4HostPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

// maxHostLabels is the label count above which a hostname is flagged for
// excessive subdomains.
const maxHostLabels = 3

// ScanURL classifies a raw URL string.
//
// Malformed input never surfaces as an error: an unparseable URL yields
// a high-risk verdict with reasonInvalidURL and no further checks. A
// hostname covered by the allowlist short-circuits to a safe verdict
// even if later heuristics would have fired. Otherwise every remaining
// check runs and the verdict accumulates reasons under monotonic risk
// escalation.
//
// The context covers the ledger lookups only; no network I/O occurs.
func (s *Screener) ScanURL(ctx context.Context, rawURL string) model.ScanVerdict {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Hostname() == "" {
		return model.ScanVerdict{
			IsSafe:  false,
			Risk:    model.RiskHigh,
			Reasons: []string{reasonInvalidURL},
		}
	}

	domain := strings.ToLower(parsed.Hostname())
	// Unicode hostnames are compared in punycode form so the lexicon and
	// distance checks see what the resolver would.
	if ascii, err := idna.Lookup.ToASCII(domain); err == nil && ascii != "" {
		domain = ascii
	}

	if TrustPolicy(domain, s.trusted) {
		return model.ScanVerdict{
			IsSafe:  true,
			Risk:    model.RiskLow,
			Reasons: []string{reasonTrustedDomain},
		}
	}

	var verdict model.ScanVerdict

	if ipv4HostPattern.MatchString(domain) {
		verdict.AddReason(reasonIPAddressHost, model.RiskHigh)
	}

	for _, term := range s.hostTerms {
		if strings.Contains(domain, term) {
			verdict.AddReason(reasonSuspiciousTerms, model.RiskMedium)
			break
		}
	}

	if len(strings.Split(domain, ".")) > maxHostLabels {
		verdict.AddReason(reasonExcessiveLabels, model.RiskMedium)
	}

	if parsed.Scheme != "https" {
		verdict.AddReason(reasonInsecureScheme, model.RiskHigh)
	}

	if hasSuspiciousCharacters(rawURL) {
		verdict.AddReason(reasonSuspiciousChars, model.RiskHigh)
	}

	if NearTrusted(domain, s.trusted) {
		verdict.AddReason(reasonTyposquatting, model.RiskHigh)
	}

	record := s.lookupReport(ctx, rawURL)
	if record != nil {
		verdict.AddReason(
			fmt.Sprintf("This URL has been reported %d times by users", record.ReportCount),
			model.RiskHigh,
		)
	}

	// Local pattern check. It deliberately re-tests ledger membership
	// already covered above and carries its own reason string, so both
	// signals stay independently visible in the verdict.
	if record != nil || s.matchesPhishingPatterns(rawURL) {
		verdict.AddReason(reasonPhishingPatterns, model.RiskHigh)
	}

	verdict.Finalize()
	return verdict
}

// hasSuspiciousCharacters reports whether the raw URL embeds an "@" or a
// "//" sequence beyond the scheme separator. Both are redirect and
// userinfo obfuscation tricks (https://trusted.com@evil.com,
// https://evil.com//redirect).
func hasSuspiciousCharacters(rawURL string) bool {
	if strings.Contains(rawURL, "@") {
		return true
	}

	rest := rawURL
	if idx := strings.Index(rawURL, "://"); idx >= 0 {
		rest = rawURL[idx+len("://"):]
	}
	return strings.Contains(rest, "//")
}

// matchesPhishingPatterns reports whether the lowercased raw URL
// contains any term of the known-phishing lexicon.
func (s *Screener) matchesPhishingPatterns(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, term := range s.patternTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
