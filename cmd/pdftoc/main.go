// Package main provides the entry point for the pdftoc CLI.
//
// pdftoc infers document titles and heading outlines (H1-H6) from PDF
// files. It prefers the embedded bookmark outline when one exists and
// falls back to heuristic text analysis, with optional OCR assist for
// scanned documents.
//
// Usage:
//
//	pdftoc extract
//	pdftoc extract document.pdf
//
// See --help for all available options.
package main

// main is the entry point for pdftoc.
func main() {
	Execute()
}
