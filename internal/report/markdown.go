package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"phishscreen/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting a
// verdict into an incident ticket.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation: type-safe tables, lists, and GitHub-flavored
// alerts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the result in Markdown format.
func (w *MarkdownWriter) Write(result *Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeAlert(md, result)
	w.writeReasons(md, result)

	return len(md.String()), md.Build()
}

// writeHeader writes the scan summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *Result) {
	md.H1("Phishscreen Report")
	md.PlainText("")

	target := strings.ReplaceAll(result.Target, "\n", " ")
	if len(target) > targetDisplayLimit {
		target = target[:targetDisplayLimit] + "..."
	}

	status := "Suspicious"
	if result.Verdict.IsSafe {
		status = "Safe"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Scan Type", result.Type},
			{"Target", "`" + target + "`"},
			{"Result", status},
			{"Risk", result.Verdict.Risk.String()},
			{"Scanned", result.ScannedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// writeAlert writes a GitHub-flavored alert matching the risk level.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *Result) {
	verdict := &result.Verdict
	switch {
	case verdict.IsSafe:
		md.Tip("No suspicious patterns detected.")
	case verdict.Risk == model.RiskHigh:
		md.Cautionf("High risk: %d indicator(s) of phishing detected.", len(verdict.Reasons))
	case verdict.Risk == model.RiskMedium:
		md.Warningf("Medium risk: %d indicator(s) warrant caution.", len(verdict.Reasons))
	default:
		md.Note("Low risk indicators detected.")
	}
	md.PlainText("")
}

// writeReasons writes the reason list in pipeline order.
func (w *MarkdownWriter) writeReasons(md *markdown.Markdown, result *Result) {
	md.H2("Reasons")
	md.PlainText("")
	md.BulletList(result.Verdict.Reasons...)
	md.PlainText("")
}
