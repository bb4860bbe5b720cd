// Package main provides the entry point for the phishscreen CLI.
//
// Phishscreen is a local heuristic screener that classifies URLs and raw
// email headers as safe or suspicious, with a risk level and
// human-readable reasons. All checks run locally; no network lookups are
// performed.
//
// Usage:
//
//	phishscreen scan <url> [url...]
//	phishscreen email <headers-file>
//	phishscreen report <url>
//	phishscreen history
//
// See --help for all available options.
package main

// main is the entry point for phishscreen.
func main() {
	Execute()
}
