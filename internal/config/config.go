package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "phishscreen"

	// DefaultBatchSize of 10 concurrent URL scans balances throughput
	// with SQLite's single-writer ledger access. Scans are CPU-trivial,
	// so higher values mostly contend on the ledger connection.
	DefaultBatchSize = 10

	// DefaultHistoryLimit is how many scan history entries the history
	// command shows unless overridden via --limit.
	DefaultHistoryLimit = 20
)

// Config holds all configuration options for phishscreen.
// This struct is designed to be populated from CLI flags and passed
// through the application via dependency injection rather than global
// state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// DataDir is the directory holding the ledger database.
	// If empty, DefaultDataDir() is used.
	DataDir string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent scans when processing
	// multiple URLs in one invocation.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .phishscreen in the current
	// directory and then in the user's home directory.
	ConfigFilePath string

	// TrustedDomains is the effective allowlist: the built-in set plus
	// any additions from the configuration file.
	TrustedDomains []string

	// ExtraSuspiciousTerms are user-supplied additions to the built-in
	// suspicious-term lexicon applied to hostnames.
	ExtraSuspiciousTerms []string

	// JSONReport enables JSON verdict output instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown verdict output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// OutputPath writes the rendered verdict to a file in addition to
	// stdout. Empty means stdout only.
	OutputPath string

	// NoColor disables colored terminal output. Color is also disabled
	// automatically when stdout is not a terminal.
	NoColor bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		BatchSize:      DefaultBatchSize,
		TrustedDomains: DefaultTrustedDomains(),
	}
}

// Validate checks the configuration for consistency.
// It returns one of the package sentinel errors on failure.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if len(c.TrustedDomains) == 0 {
		return ErrNoTrustedDomains
	}
	return nil
}

// EffectiveDataDir returns the ledger database directory, falling back
// to the XDG default when unset.
func (c *Config) EffectiveDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return DefaultDataDir()
}

// DefaultDataDir returns the default directory for persistent state
// (the report ledger database), e.g. ~/.local/share/phishscreen on Linux.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// DefaultConfigDir returns the default directory for configuration
// files, e.g. ~/.config/phishscreen on Linux.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
