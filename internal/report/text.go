package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/pdftoc/internal/model"
)

// TextWriter outputs human-readable results for terminal display: the
// title followed by the outline as an indented tree.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// showPages controls whether page numbers are printed next to each
	// outline entry.
	showPages bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithPages configures the writer to print page numbers.
func WithPages(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showPages = show
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		showPages:  true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result in human-readable format.
func (w *TextWriter) Write(result *model.Result) (int, error) {
	var sb strings.Builder

	sb.WriteString(result.Title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", len(result.Title)))
	sb.WriteString("\n\n")

	if len(result.Outline) == 0 {
		sb.WriteString("  (no outline)\n")
		return w.output.Write([]byte(sb.String()))
	}

	for _, entry := range result.Outline {
		indent := strings.Repeat("  ", int(entry.Level)-1)
		if w.showPages {
			sb.WriteString(fmt.Sprintf("%s%s %s (p.%d)\n", indent, entry.Level, entry.Text, entry.Page))
		} else {
			sb.WriteString(fmt.Sprintf("%s%s %s\n", indent, entry.Level, entry.Text))
		}
	}

	return w.output.Write([]byte(sb.String()))
}
