// Package outline implements the title and outline inference engine.
//
// The engine resolves a document title through a layered fallback chain,
// prefers embedded bookmarks over heuristics when the document carries
// them, and otherwise classifies individual lines into heading levels
// using an ordered pattern table combined with typographic signals.
//
// Data flows strictly downward: Engine.ProcessDocument composes the
// title resolver and outline builder, which call the classifier, which
// consults the pattern table. No component calls upward, and nothing
// above ProcessDocument ever sees a per-document error: every failure
// is converted into a degraded result so a batch never aborts because
// of one document.
package outline
