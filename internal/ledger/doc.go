// Package ledger provides SQLite-backed storage for user-submitted URL
// reports and the scan history list.
//
// The report ledger is keyed by the exact URL string as submitted: no
// normalization is applied on write or lookup. Reporting the same string
// again increments its count and refreshes its timestamp; records are
// never deleted.
//
// Callers on the scan path must treat ledger read errors as an empty
// ledger (fail open to "no prior reports") so a broken database never
// blocks a scan.
package ledger
