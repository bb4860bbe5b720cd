package heuristic

import (
	"context"
	"log/slog"
	"strings"

	"phishscreen/internal/model"
)

// ReportSource is the ledger view the URL pipeline consults.
// Lookup must be an exact-string match with no normalization.
//
// Design decision: We depend on a narrow interface rather than the
// concrete ledger type so pipelines are deterministic and testable
// against a fixed in-memory snapshot, and so a scan never requires a
// writable database.
type ReportSource interface {
	Lookup(ctx context.Context, url string) (*model.ReportRecord, error)
}

// Screener runs the URL and email header heuristic pipelines.
// It holds only read-only state after construction, so a single Screener
// is safe for concurrent scans.
type Screener struct {
	// trusted is the lowercased trusted-domain allowlist.
	trusted []string

	// hostTerms are substrings flagged when found in a hostname.
	hostTerms []string

	// patternTerms are substrings flagged when found anywhere in the
	// lowercased raw URL by the known-phishing-patterns check.
	patternTerms []string

	// reports is the ledger view, may be nil when no ledger is attached.
	reports ReportSource

	// logger for structured logging.
	logger *slog.Logger
}

// hostSuspiciousTerms is the built-in lexicon applied to hostnames.
var hostSuspiciousTerms = []string{
	"login", "signin", "account", "verify", "secure", "banking",
	"support", "help", "service", "update", "confirm",
}

// urlPatternTerms is the built-in lexicon applied to whole URLs by the
// known-phishing-patterns check. It overlaps the hostname lexicon on
// purpose: the two checks cover different input surfaces and carry
// distinct reasons.
var urlPatternTerms = []string{
	"login", "signin", "account", "verify", "secure", "banking",
	"paypal", "password", "credential", "wallet", "crypto",
	"authenticate", "verification", "security", "update", "confirm",
}

// Option configures a Screener.
type Option func(*Screener)

// WithReportSource attaches a report ledger view to the URL pipeline.
// Without one, the reported-URL and ledger half of the pattern check
// behave as if the ledger were empty.
func WithReportSource(src ReportSource) Option {
	return func(s *Screener) {
		s.reports = src
	}
}

// WithExtraHostTerms extends the hostname suspicious-term lexicon.
func WithExtraHostTerms(terms []string) Option {
	return func(s *Screener) {
		for _, term := range terms {
			s.hostTerms = append(s.hostTerms, strings.ToLower(term))
		}
	}
}

// WithLogger sets a custom logger for the screener.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Screener) {
		s.logger = logger
	}
}

// NewScreener creates a Screener over the given trusted-domain set.
// Trusted domains are lowercased; heuristics compare lowercased input
// throughout.
func NewScreener(trustedDomains []string, opts ...Option) *Screener {
	s := &Screener{
		trusted:      make([]string, 0, len(trustedDomains)),
		hostTerms:    append([]string(nil), hostSuspiciousTerms...),
		patternTerms: append([]string(nil), urlPatternTerms...),
		logger:       slog.Default(),
	}
	for _, d := range trustedDomains {
		s.trusted = append(s.trusted, strings.ToLower(d))
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// lookupReport consults the ledger, failing open to "no prior reports"
// on any error. A broken ledger must never block a scan.
func (s *Screener) lookupReport(ctx context.Context, url string) *model.ReportRecord {
	if s.reports == nil {
		return nil
	}
	record, err := s.reports.Lookup(ctx, url)
	if err != nil {
		s.logger.Debug("ledger lookup failed, treating as unreported", "url", url, "error", err)
		return nil
	}
	return record
}
