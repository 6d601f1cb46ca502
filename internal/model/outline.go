package model

import (
	"fmt"
	"strconv"
)

// HeadingLevel is the coarse depth tag of an outline entry, H1 through H6.
//
// Design decision: We use an int-based type rather than string constants
// so levels compare and sort naturally; the String() method and JSON
// marshalling produce the "H1".."H6" form the output record requires.
type HeadingLevel int

// Heading levels, ordered from most to least prominent.
const (
	H1 HeadingLevel = iota + 1
	H2
	H3
	H4
	H5
	H6
)

// ClampLevel converts a raw outline nesting depth to a HeadingLevel,
// clamping it into [1, 6].
func ClampLevel(n int) HeadingLevel {
	if n < 1 {
		return H1
	}
	if n > 6 {
		return H6
	}
	return HeadingLevel(n)
}

// String returns the "H1".."H6" form of the level.
func (l HeadingLevel) String() string {
	return "H" + strconv.Itoa(int(l))
}

// MarshalJSON encodes the level as a JSON string, e.g. "H2".
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes a "H1".."H6" JSON string.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 4 || s[0] != '"' || s[len(s)-1] != '"' || s[1] != 'H' {
		return fmt.Errorf("invalid heading level %s", s)
	}
	n, err := strconv.Atoi(s[2 : len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid heading level %s: %w", s, err)
	}
	if n < 1 || n > 6 {
		return fmt.Errorf("heading level %d out of range", n)
	}
	*l = HeadingLevel(n)
	return nil
}

// OutlineEntry is one heading of an inferred outline.
type OutlineEntry struct {
	// Level is the heading depth, H1..H6.
	Level HeadingLevel `json:"level"`

	// Text is the trimmed heading text.
	Text string `json:"text"`

	// Page is the 1-indexed page the heading appears on.
	Page int `json:"page"`
}

// Result is the record produced for one document.
// It is the unit written to the output directory, the summary report,
// and the results database.
type Result struct {
	// Title is the resolved document title. Never empty.
	Title string `json:"title"`

	// Outline is the inferred outline in document order.
	// Always non-nil so the JSON record contains an array, never null.
	Outline []OutlineEntry `json:"outline"`

	// Degraded reports whether this result is the minimal fallback
	// produced after a processing failure. Not part of the record
	// schema; used for logging, the summary report, and the database.
	Degraded bool `json:"-"`
}

// NewResult builds a full result, normalizing a nil outline to an
// empty slice.
func NewResult(title string, outline []OutlineEntry) *Result {
	if outline == nil {
		outline = []OutlineEntry{}
	}
	return &Result{Title: title, Outline: outline}
}

// NewDegradedResult builds the minimal valid result for a document
// that failed processing: the document's stem as title and an empty
// outline.
func NewDegradedResult(stem string) *Result {
	return &Result{Title: stem, Outline: []OutlineEntry{}, Degraded: true}
}
