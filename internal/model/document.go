package model

import "strings"

// Span is a text fragment with uniform font attributes.
// Spans are the smallest unit the PDF adapter reports; a line is
// reconstructed from the spans that share a baseline.
type Span struct {
	// Text is the raw text of the fragment. It may contain leading or
	// trailing whitespace; trimming happens at the line level.
	Text string `json:"text"`

	// FontSize is the font size in points.
	FontSize float64 `json:"font_size"`

	// Font is the font name as reported by the document, e.g.
	// "Helvetica-Bold". Bold detection relies on the name containing
	// the substring "Bold".
	Font string `json:"font"`
}

// Line is an ordered list of spans sharing a baseline.
type Line struct {
	Spans []Span `json:"spans"`
}

// Style summarizes the typographic signals of a line.
// It is derived from the line's spans and consumed by the heading
// classifier's gate.
type Style struct {
	// MaxFontSize is the largest font size across the line's spans.
	MaxFontSize float64

	// Bold reports whether any span uses a bold font.
	Bold bool
}

// Text returns the combined text of the line: the concatenation of all
// span texts with surrounding whitespace trimmed.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return strings.TrimSpace(sb.String())
}

// Style returns the style summary of the line.
// A line without spans yields the zero Style, which always fails the
// classifier's gate.
func (l Line) Style() Style {
	var st Style
	for _, s := range l.Spans {
		if s.FontSize > st.MaxFontSize {
			st.MaxFontSize = s.FontSize
		}
		if strings.Contains(s.Font, "Bold") {
			st.Bold = true
		}
	}
	return st
}

// Block is an ordered list of lines, as grouped by the PDF adapter.
type Block struct {
	Lines []Line `json:"lines"`
}

// EmbeddedEntry is one entry of a document's embedded outline
// (bookmarks), as supplied by the document format.
// Level is the raw nesting depth; it is clamped when mapped to an
// OutlineEntry.
type EmbeddedEntry struct {
	Level int
	Text  string
	Page  int
}

// Document is the capability interface the inference engine consumes.
// The PDF adapter implements it; tests use in-memory fakes.
//
// All methods are synchronous and may block on I/O. None of them is
// safe for concurrent use on the same document; each document is
// processed by exactly one goroutine.
type Document interface {
	// MetadataTitle returns the title from the document's metadata
	// dictionary, or the empty string when absent.
	MetadataTitle() string

	// PageCount returns the total number of pages.
	PageCount() int

	// EmbeddedOutline returns the document's embedded outline in
	// original order, flattened depth-first. The slice is empty when
	// the document carries no bookmarks.
	EmbeddedOutline() []EmbeddedEntry

	// FallbackName returns an internal name for the document, used as
	// the last title fallback. May be empty.
	FallbackName() string

	// Page returns the zero-based page at index i.
	Page(i int) Page

	// Close releases the resources backing the document.
	Close() error
}

// Page is one page of a Document.
type Page interface {
	// PlainText returns the page's extracted text. It may be empty for
	// image-only (scanned) pages.
	PlainText() string

	// StructuredBlocks returns the page's content grouped into blocks,
	// lines, and spans with font information. It may be empty even when
	// PlainText is not, and it is always empty for OCR-derived text.
	StructuredBlocks() []Block

	// RenderImage renders the page to a PNG at the given resolution.
	RenderImage(dpi int) ([]byte, error)
}
