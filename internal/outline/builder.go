package outline

import (
	"context"
	"strings"
	"time"

	"github.com/nao1215/pdftoc/internal/model"
)

// minPageTextLen is the threshold below which a page's extracted text is
// considered effectively empty for OCR purposes. A page yielding fewer
// characters than this is almost certainly a scan with stray artifacts.
const minPageTextLen = 5

// seenKey deduplicates heuristic outline entries within one document.
type seenKey struct {
	text  string
	level model.HeadingLevel
}

// BuildOutline produces the document's outline.
//
// When the document carries an embedded outline it is mapped verbatim
// (levels clamped into [1, 6], text trimmed, pages as given, original
// order, no deduplication) and the classifier is never consulted.
// Otherwise the outline is derived by the heuristic page scan.
func (e *Engine) BuildOutline(ctx context.Context, doc model.Document) []model.OutlineEntry {
	if embedded := doc.EmbeddedOutline(); len(embedded) > 0 {
		entries := make([]model.OutlineEntry, 0, len(embedded))
		for _, b := range embedded {
			entries = append(entries, model.OutlineEntry{
				Level: model.ClampLevel(b.Level),
				Text:  strings.TrimSpace(b.Text),
				Page:  b.Page,
			})
		}
		return entries
	}

	return e.scanOutline(ctx, doc)
}

// scanOutline derives an outline by classifying every line of the first
// min(pageCount, MaxPagesScan) pages.
//
// The dedup set and the accumulator are local to this call: an explicit
// fold over pages and lines, one instance per document, never shared
// across concurrent documents.
//
// OCR can stand in for a page's plain text when both OCR gates are
// enabled, but OCR output carries no span or font data, so structured
// blocks remain whatever the underlying page naturally has. An OCR-only
// page may therefore contribute zero heading hits even though it has
// text. This is a structural limitation of the source signals, kept
// deliberately.
func (e *Engine) scanOutline(ctx context.Context, doc model.Document) []model.OutlineEntry {
	pages := min(doc.PageCount(), e.cfg.MaxPagesScan)

	entries := []model.OutlineEntry{}
	seen := make(map[seenKey]struct{})
	start := time.Now()

	for pn := 0; pn < pages; pn++ {
		page := doc.Page(pn)

		text := page.PlainText()
		if (text == "" || len(text) < minPageTextLen) && e.cfg.OCRFallback && e.cfg.OCREveryPage {
			text = e.ocrPage(ctx, page)
		}
		if text == "" {
			continue
		}

		for _, block := range page.StructuredBlocks() {
			for _, line := range block.Lines {
				lineText := line.Text()
				level, ok := Classify(lineText, line.Style(), e.table, e.cfg.SizeThreshold)
				if !ok {
					continue
				}

				key := seenKey{text: strings.ToLower(lineText), level: level}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				entries = append(entries, model.OutlineEntry{
					Level: level,
					Text:  lineText,
					Page:  pn + 1,
				})
			}
		}
	}

	e.logger.Debug("heuristic scan complete",
		"pages", pages,
		"headings", len(entries),
		"elapsed", time.Since(start),
	)

	return entries
}
