package heuristic

import "strings"

// TrustPolicy reports whether a lowercased hostname is covered by the
// trusted-domain allowlist.
//
// Normalization takes the last two dot-separated labels of the hostname
// (a registrable-domain approximation that does not handle multi-part
// public suffixes like .co.uk). A domain is trusted when any allowlist
// entry contains the normalized form as a substring, which lets
// mail.google.com match google.com.
//
// The substring match is intentionally permissive and is a known
// false-positive source: a crafted hostname whose last two labels appear
// inside a trusted entry would be wrongly trusted. The policy is kept
// behind this single function so it can be swapped for a strict
// exact-suffix match without touching pipeline logic.
func TrustPolicy(domain string, trusted []string) bool {
	labels := strings.Split(domain, ".")
	registrable := domain
	if len(labels) > 2 {
		registrable = strings.Join(labels[len(labels)-2:], ".")
	}

	for _, entry := range trusted {
		if strings.Contains(entry, registrable) {
			return true
		}
	}
	return false
}
