// Package model defines the core data structures used throughout pdftoc.
//
// This package contains the following main types:
//   - Span, Line, Block: the structured content of a single page
//   - OutlineEntry, Result: the inferred outline record for one document
//   - Document, Page: the capability interfaces the inference engine
//     consumes, implemented by the PDF adapter
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (outline, pdfdoc, batch, report) need these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for record output and
// database storage.
package model
