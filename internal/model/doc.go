// Package model defines the core data structures used throughout phishscreen.
//
// This package contains the following main types:
//   - RiskLevel: The ordered risk classification of a scan result
//   - ScanVerdict: The outcome of a URL or email header scan
//   - ReportRecord: A ledger entry for a user-reported URL
//   - ScanHistoryEntry: A summarized past scan for history display
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (heuristic, ledger, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
