package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/pdftoc/internal/model"
)

// MarkdownWriter outputs results and batch summaries in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs one document's result in Markdown format: the title as a
// heading, then the outline as a nested bullet list.
func (w *MarkdownWriter) Write(result *model.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(result.Title)
	md.PlainText("")

	if len(result.Outline) == 0 {
		md.PlainText("No outline detected.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(result.Outline))
	for i, entry := range result.Outline {
		rows[i] = []string{
			entry.Level.String(),
			entry.Text,
			strconv.Itoa(entry.Page),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Level", "Heading", "Page"},
		Rows:   rows,
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}

// WriteSummary outputs a batch run summary in Markdown format.
func (w *MarkdownWriter) WriteSummary(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeSummaryHeader(md, summary)
	w.writeSummaryTable(md, summary)
	w.writeOutcomeChart(md, summary)
	w.writeSummaryAlert(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeSummaryHeader writes the run header with batch information.
func (w *MarkdownWriter) writeSummaryHeader(md *markdown.Markdown, summary *Summary) {
	md.H1("Outline Extraction Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run Date", summary.Started.Format("2006-01-02 15:04:05 MST")},
			{"Documents", strconv.Itoa(len(summary.Items))},
			{"Completed", strconv.Itoa(summary.CompletedCount())},
			{"Degraded", strconv.Itoa(summary.DegradedCount())},
			{"Headings", strconv.Itoa(summary.TotalHeadings())},
			{"Elapsed", summary.Elapsed.String()},
		},
	})
	md.PlainText("")
}

// writeSummaryTable writes the per-document result table.
func (w *MarkdownWriter) writeSummaryTable(md *markdown.Markdown, summary *Summary) {
	md.H2("Documents")
	md.PlainText("")

	if len(summary.Items) == 0 {
		md.PlainText("No documents processed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(summary.Items))
	for i, item := range summary.Items {
		status := "✅"
		if item.Degraded {
			status = "❌"
		}
		rows[i] = []string{
			"`" + item.Name + "`",
			truncateString(item.Title, 60),
			strconv.Itoa(item.Headings),
			status,
			item.Elapsed.Round(time.Millisecond).String(),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Document", "Title", "Headings", "Status", "Elapsed"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeOutcomeChart writes a mermaid pie chart of processing outcomes.
func (w *MarkdownWriter) writeOutcomeChart(md *markdown.Markdown, summary *Summary) {
	if len(summary.Items) == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Processing Outcomes"),
		piechart.WithShowData(true),
	)

	if n := summary.CompletedCount(); n > 0 {
		chart.LabelAndIntValue("Completed", uint64(n))
	}
	if n := summary.DegradedCount(); n > 0 {
		chart.LabelAndIntValue("Degraded", uint64(n))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeSummaryAlert writes an alert reflecting the run outcome.
func (w *MarkdownWriter) writeSummaryAlert(md *markdown.Markdown, summary *Summary) {
	switch {
	case len(summary.Items) == 0:
		md.Note("Nothing to process.")
	case summary.DegradedCount() == len(summary.Items):
		md.Cautionf(
			"All %d document(s) failed processing and received fallback output.",
			summary.DegradedCount(),
		)
	case summary.DegradedCount() > 0:
		md.Warningf(
			"%d document(s) failed processing and received fallback output.",
			summary.DegradedCount(),
		)
	default:
		md.Tip("All documents processed successfully.")
	}
	md.PlainText("")
}

// writeFooter writes the summary footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by [pdftoc](https://github.com/nao1215/pdftoc)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
