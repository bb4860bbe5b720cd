package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".phishscreen"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .phishscreen configuration file.
// It can only extend the built-in heuristics, never disable them: a
// config file cannot remove a built-in trusted domain or lexicon term.
type File struct {
	// TrustedDomains are additional apex domains to treat as trusted,
	// merged with the built-in allowlist.
	TrustedDomains []string `yaml:"trustedDomains,omitempty"`

	// SuspiciousTerms are additional substrings flagged when found in a
	// scanned hostname, merged with the built-in lexicon.
	SuspiciousTerms []string `yaml:"suspiciousTerms,omitempty"`
}

// LoadConfigFile loads heuristic extensions from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether the
// config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply merges the file's extensions into the configuration.
func (cf *File) Apply(c *Config) {
	c.TrustedDomains = append(c.TrustedDomains, cf.TrustedDomains...)
	c.ExtraSuspiciousTerms = append(c.ExtraSuspiciousTerms, cf.SuspiciousTerms...)
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .phishscreen in the current directory
// 3. Look for .phishscreen in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
