// Package pdfdoc adapts PDF files to the document capability interfaces
// the inference engine consumes.
//
// Two libraries share the work: ledongthuc/pdf supplies page text, page
// count, span-level content with font data, and the metadata title;
// pdfcpu supplies the embedded outline (bookmarks), which ledongthuc/pdf
// exposes without page numbers. Page rendering for OCR shells out to
// pdftoppm from poppler-utils.
//
// The underlying PDF reader panics on some malformed files. Open
// converts panics during opening into an *OpenError; panics during page
// access are deliberately left to the processing boundary, which
// degrades the whole document.
package pdfdoc
