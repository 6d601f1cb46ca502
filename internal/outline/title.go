package outline

import (
	"context"
	"regexp"
	"strings"

	"github.com/nao1215/pdftoc/internal/model"
)

// UntitledTitle is the literal returned when every fallback in the
// title chain comes up empty.
const UntitledTitle = "Untitled Document"

const (
	// titleCandidateLines is how many non-empty first-page lines are
	// considered as title candidates.
	titleCandidateLines = 5

	// titleMinLength is the exclusive minimum length for a candidate
	// line. Shorter lines are dates, numbers, or decoration.
	titleMinLength = 10
)

// pageNumberRe matches lines that are only a page number, optionally
// prefixed with "page". Such lines are never titles.
var pageNumberRe = regexp.MustCompile(`(?i)^(page\s*\d+|\d+\s*)$`)

// ResolveTitle produces a title for the document. It is a total
// function: some rule in the fallback chain always fires, so the result
// is never empty.
//
// The chain, first satisfying rule wins:
//  1. the metadata title, trimmed, if non-empty
//  2. "Untitled Document" for a zero-page document
//  3. the first qualifying line of the first page's text, with OCR
//     standing in for the text when extraction yields nothing and the
//     OCR fallback is enabled
//  4. the document's fallback name
//  5. "Untitled Document"
func (e *Engine) ResolveTitle(ctx context.Context, doc model.Document) string {
	if meta := strings.TrimSpace(doc.MetadataTitle()); meta != "" {
		return meta
	}

	if doc.PageCount() == 0 {
		return UntitledTitle
	}

	page := doc.Page(0)
	text := strings.TrimSpace(page.PlainText())
	if text == "" && e.cfg.OCRFallback {
		text = e.ocrPage(ctx, page)
	}

	if title := firstTitleCandidate(text); title != "" {
		return title
	}

	if name := doc.FallbackName(); name != "" {
		return name
	}
	return UntitledTitle
}

// firstTitleCandidate scans the first titleCandidateLines non-empty
// trimmed lines of text and returns the first one long enough to be a
// title and not a bare page number. Returns "" when none qualifies.
func firstTitleCandidate(text string) string {
	seen := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		seen++
		if seen > titleCandidateLines {
			break
		}
		if len(line) > titleMinLength && !pageNumberRe.MatchString(line) {
			return line
		}
	}
	return ""
}
