// Package report provides result output functionality.
//
// This package contains writers for different output formats:
//   - JSONWriter: the per-document JSON record the batch runner emits
//   - TextWriter: human-readable outline for terminal display
//   - MarkdownWriter: Markdown summary of a whole batch run
//
// Design decision: We separate result writing from result data structures
// (which are in the model package) to follow the single responsibility
// principle. This allows adding new output formats without modifying
// the core data structures.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
