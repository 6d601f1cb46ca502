package outline

import "github.com/nao1215/pdftoc/internal/model"

// minHeadingTextLen is the minimum trimmed length for a line to be a
// heading candidate. Shorter fragments are page furniture (numbers,
// bullets, single words) far more often than headings.
const minHeadingTextLen = 4

// Classify maps one line to an optional heading level.
//
// The typographic gate runs before any pattern test: the trimmed text
// must be at least minHeadingTextLen characters long, and the line must
// either reach the size threshold or contain a bold span. Lines failing
// the gate never match, regardless of content. Lines passing it are
// tested against the table in priority order.
//
// Classify is a pure function with no failure mode: missing style data
// simply fails the gate.
func Classify(text string, style model.Style, table *Table, sizeThreshold float64) (model.HeadingLevel, bool) {
	if len(text) < minHeadingTextLen {
		return 0, false
	}
	if style.MaxFontSize < sizeThreshold && !style.Bold {
		return 0, false
	}
	return table.Match(text)
}
