package report

import (
	"encoding/json"
	"io"
)

// JSONWriter outputs results in JSON format.
// This format is designed for tool integration and programmatic
// processing.
//
// Design decision: We use standard encoding/json rather than a
// third-party JSON library because it's part of the standard library and
// sufficient for a flat result structure.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result in JSON format.
func (w *JSONWriter) Write(result *Result) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
