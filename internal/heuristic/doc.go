// Package heuristic implements the phishing classification engine.
//
// Two independent pipelines share a common verdict shape:
//   - ScanURL parses a URL, short-circuits on the trusted-domain
//     allowlist, then runs a battery of structural and lexical checks
//     plus a report-ledger lookup.
//   - ScanEmail parses a raw email header blob with regular expressions
//     and runs a battery of header-consistency checks.
//
// Risk escalation is monotonic: a verdict's final risk is the maximum
// risk contributed by any single triggered check, never a sum and never
// lowered by a later check.
//
// All collaborators (trusted-domain set, lexicon extensions, report
// ledger) are injected into the Screener so pipelines are deterministic
// given a fixed ledger snapshot. No check performs network I/O.
package heuristic
