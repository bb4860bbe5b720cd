package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"phishscreen/internal/model"
)

// targetDisplayLimit truncates very long targets (email header blobs)
// in terminal output.
const targetDisplayLimit = 70

// SimpleWriter outputs human-readable text verdicts.
// This format is designed for terminal display with color-coded risk
// levels and clear section formatting.
type SimpleWriter struct {
	baseWriter

	// useColor enables ANSI risk coloring. Callers disable it when
	// stdout is not a terminal or --no-color is set.
	useColor bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables or disables ANSI color output.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.useColor = enabled
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		useColor:   false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result in human-readable format.
func (w *SimpleWriter) Write(result *Result) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeVerdict(&sb, result)
	w.writeReasons(&sb, result)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the scan target and timestamp.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *Result) {
	target := result.Target
	if len(target) > targetDisplayLimit {
		target = target[:targetDisplayLimit] + "..."
	}
	// Header blobs are multi-line; keep the header on one line.
	target = strings.ReplaceAll(target, "\n", " ")

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "%s scan: %s\n", result.Type, target)
	if w.verbose {
		fmt.Fprintf(sb, "Scanned at: %s\n", result.ScannedAt.Format("2006-01-02 15:04:05 MST"))
	}
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")
}

// writeVerdict writes the safety line with colored risk.
func (w *SimpleWriter) writeVerdict(sb *strings.Builder, result *Result) {
	verdict := &result.Verdict

	status := "SUSPICIOUS"
	if verdict.IsSafe {
		status = "SAFE"
	}

	fmt.Fprintf(sb, "Result: %s\n", w.colorStatus(status, verdict))
	fmt.Fprintf(sb, "Risk:   %s\n", w.colorRisk(verdict.Risk))
	if verdict.Reported {
		sb.WriteString("Status: reported by you\n")
	}
	sb.WriteString("\n")
}

// writeReasons writes the reason list in pipeline order.
func (w *SimpleWriter) writeReasons(sb *strings.Builder, result *Result) {
	sb.WriteString("Reasons:\n")
	for _, reason := range result.Verdict.Reasons {
		fmt.Fprintf(sb, "  - %s\n", reason)
	}
	sb.WriteString("\n")
}

// colorStatus formats the SAFE/SUSPICIOUS status.
func (w *SimpleWriter) colorStatus(status string, verdict *model.ScanVerdict) string {
	if !w.useColor {
		return status
	}
	if verdict.IsSafe {
		return color.GreenString(status)
	}
	return color.RedString(status)
}

// colorRisk formats the risk level with its conventional color.
func (w *SimpleWriter) colorRisk(risk model.RiskLevel) string {
	if !w.useColor {
		return risk.String()
	}
	switch risk {
	case model.RiskLow:
		return color.GreenString(risk.String())
	case model.RiskMedium:
		return color.YellowString(risk.String())
	case model.RiskHigh:
		return color.RedString(risk.String())
	default:
		return risk.String()
	}
}
