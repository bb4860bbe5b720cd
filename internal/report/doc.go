// Package report renders scan verdicts in multiple output formats.
//
// Three writers share the Writer interface: a human-readable terminal
// format with color-coded risk, a JSON format for tool integration, and
// a Markdown format for documentation and sharing.
package report
