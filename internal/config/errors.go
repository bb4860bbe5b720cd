package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoTarget is returned when no URL or header file is given to a
	// scan command, either positionally or via --list.
	ErrNoTarget = errors.New("no target specified: provide a URL or use --list")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent scans at all.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoTrustedDomains is returned when the trusted-domain set ends up
	// empty. An empty allowlist would flag every near-identical domain as
	// clean and break the typosquatting detector's baseline.
	ErrNoTrustedDomains = errors.New("trusted domain set is empty")
)
