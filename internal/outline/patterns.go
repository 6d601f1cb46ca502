package outline

import (
	"regexp"

	"github.com/nao1215/pdftoc/internal/model"
)

// Pattern pairs an anchored regular expression with the heading level it
// assigns. All patterns are compiled case-insensitively.
type Pattern struct {
	re    *regexp.Regexp
	level model.HeadingLevel
}

// Table is the ordered, immutable set of heading patterns.
//
// Order is semantically load-bearing: matching stops at the first
// pattern whose anchor matches the start of the text, so earlier
// patterns take priority over later ones regardless of specificity.
// Construct it once at startup and share it read-only across all
// documents and goroutines.
type Table struct {
	patterns []Pattern
}

// NewTable builds the default heading pattern table.
//
// The patterns, in priority order:
//
//	 1. "Chapter <n>"                          -> H1
//	 2. "<n>. <Capitalized...>" (no period)    -> H1
//	 3. all-caps line, 6+ chars                -> H1
//	 4. "<n>.<n> <Capitalized...>"             -> H2
//	 5. title-case line                        -> H2
//	 6. "<n>.<n>.<n> <Capitalized...>"         -> H3
//	 7. "<a>) <Capitalized...>"                -> H3
//	 8. "<roman>. <Capitalized...>"            -> H3
//	 9. underlined line (dashes/equals)        -> H1
//	10. "Section"/"Appendix <id>"              -> H1
//
// Pattern 9 requires an embedded newline before the underline run, and
// classifier input is a single line, so it can only fire when a caller
// feeds multi-line text. It is retained to keep the table's priority
// order intact.
func NewTable() *Table {
	return &Table{
		patterns: []Pattern{
			{regexp.MustCompile(`(?i)^Chapter\s+\d+`), model.H1},
			{regexp.MustCompile(`(?i)^\d+\.\s+[A-Z][^.]*`), model.H1},
			{regexp.MustCompile(`(?i)^[A-Z][A-Z\s]{5,}\s*$`), model.H1},
			{regexp.MustCompile(`(?i)^\d+\.\d+\s+[A-Z][^.]*`), model.H2},
			{regexp.MustCompile(`(?i)^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s*$`), model.H2},
			{regexp.MustCompile(`(?i)^\d+\.\d+\.\d+\s+[A-Z][^.]*`), model.H3},
			{regexp.MustCompile(`(?i)^[a-z]\)\s+[A-Z][^.]*`), model.H3},
			{regexp.MustCompile(`(?i)^[ivxlcdm]+\.\s+[A-Z][^.]*`), model.H3},
			{regexp.MustCompile(`(?i)^[A-Z][A-Za-z0-9 ]+\n[-=]{3,}$`), model.H1},
			{regexp.MustCompile(`(?i)^(?:Section|Appendix)\s+[A-Z0-9]+`), model.H1},
		},
	}
}

// Match returns the level of the first pattern matching the text, in
// table order. Later patterns are not evaluated once one matches.
func (t *Table) Match(text string) (model.HeadingLevel, bool) {
	for _, p := range t.patterns {
		if p.re.MatchString(text) {
			return p.level, true
		}
	}
	return 0, false
}

// Len returns the number of patterns in the table.
func (t *Table) Len() int {
	return len(t.patterns)
}
