package report

import (
	"io"
	"time"

	"phishscreen/internal/model"
)

// Result bundles a verdict with the scan context needed to render it.
type Result struct {
	// Type is the kind of scan: model.ScanTypeURL or model.ScanTypeEmail.
	Type string `json:"type"`

	// Target is the scanned input. Email header blobs are passed in
	// full; writers truncate for display where appropriate.
	Target string `json:"target"`

	// Verdict is the pipeline's classification.
	Verdict model.ScanVerdict `json:"verdict"`

	// ScannedAt is when the scan completed.
	ScannedAt time.Time `json:"scanned_at"`
}

// Writer defines the interface for verdict output.
// Implementations write scan results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or buffers
// with the same API.
type Writer interface {
	// Write outputs the result to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *Result) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different from
// io.Writer - we write results, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the result to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(result *Result) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for verdict writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
