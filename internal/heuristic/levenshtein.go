package heuristic

// typosquatMaxDistance is the edit-distance ceiling for flagging a
// domain as suspiciously close to a trusted one. Two edits covers the
// common substitution tricks (go0gle, paypa1) without flagging
// legitimately distinct domains.
const typosquatMaxDistance = 2

// levenshtein computes the classic edit distance between two strings:
// the minimum number of single-character insertions, deletions, and
// substitutions (cost 1 each) turning a into b. Comparison is
// case-sensitive; callers lowercase their inputs first.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two-row dynamic programming over bytes. Hostnames reaching this
	// point are IDNA ASCII, so byte and rune distance coincide.
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := 0; i <= len(a); i++ {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min(curr[i-1]+1, prev[i]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// NearTrusted reports whether the full (non-normalized) lowercased
// domain sits within typosquatMaxDistance edits of any trusted domain.
// Distance zero is excluded: exact matches are the trust check's
// business, not typosquatting.
func NearTrusted(domain string, trusted []string) bool {
	for _, entry := range trusted {
		d := levenshtein(domain, entry)
		if d > 0 && d <= typosquatMaxDistance {
			return true
		}
	}
	return false
}
