// Package config provides configuration management for phishscreen.
//
// Configuration flows from CLI flags into a Config struct that is passed
// through the application via dependency injection rather than global
// state. An optional .phishscreen YAML file can extend the built-in
// trusted-domain allowlist and the suspicious-term lexicon.
//
// The package also resolves XDG base directories for the report ledger
// database so state survives process restarts within the same user
// profile.
package config
