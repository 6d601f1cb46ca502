package report

import (
	"time"
)

// Item is one document's row in a batch summary.
type Item struct {
	// Name is the document stem, which is also the output file name
	// without its .json extension.
	Name string

	// Title is the inferred document title.
	Title string

	// Headings is the number of outline entries.
	Headings int

	// Degraded reports that the document could not be processed and
	// received the fallback result.
	Degraded bool

	// Elapsed is the processing time for this document.
	Elapsed time.Duration
}

// Summary aggregates one batch run for summary output.
type Summary struct {
	// Items holds one entry per input document, in input order.
	Items []Item

	// Started is when the batch run began.
	Started time.Time

	// Elapsed is the wall-clock duration of the whole run.
	Elapsed time.Duration
}

// DegradedCount returns the number of documents that failed processing.
func (s *Summary) DegradedCount() int {
	var n int
	for _, item := range s.Items {
		if item.Degraded {
			n++
		}
	}
	return n
}

// CompletedCount returns the number of documents processed successfully.
func (s *Summary) CompletedCount() int {
	return len(s.Items) - s.DegradedCount()
}

// TotalHeadings returns the number of outline entries across all
// documents.
func (s *Summary) TotalHeadings() int {
	var n int
	for _, item := range s.Items {
		n += item.Headings
	}
	return n
}
