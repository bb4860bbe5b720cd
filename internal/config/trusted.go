package config

// defaultTrustedDomains is the built-in allowlist of apex domains treated
// as inherently trustworthy. Entries are grouped informally by category;
// order is irrelevant, membership is what matters.
//
// The set is fixed at process start. Users can extend (not shrink) it via
// the .phishscreen configuration file.
var defaultTrustedDomains = []string{
	// Social media
	"google.com", "youtube.com", "instagram.com", "facebook.com", "twitter.com",
	"linkedin.com", "whatsapp.com", "reddit.com", "wikipedia.org", "pinterest.com",

	// Educational
	"coursera.org", "edx.org", "khanacademy.org", "ocw.mit.edu", "udemy.com",
	"geeksforgeeks.org", "freecodecamp.org", "stackoverflow.com", "w3schools.com",
	"developer.mozilla.org",

	// Shopping
	"amazon.com", "flipkart.com", "walmart.com", "bestbuy.com", "ebay.com",

	// News
	"bbc.com", "reuters.com", "nationalgeographic.com", "nytimes.com", "theguardian.com",

	// Health
	"mayoclinic.org", "webmd.com", "who.int", "nih.gov",

	// Government
	"gov.in", "usa.gov", "gov.uk", "unesco.org",
}

// DefaultTrustedDomains returns a copy of the built-in allowlist.
// A copy is returned so callers cannot mutate the process-wide set.
func DefaultTrustedDomains() []string {
	domains := make([]string, len(defaultTrustedDomains))
	copy(domains, defaultTrustedDomains)
	return domains
}
