// Package ocr recognizes text on rendered page images by shelling out to
// the tesseract binary. Recognition is always plain text; layout and
// font information are not recovered, so OCR-sourced pages contribute to
// title selection and plain-text gates but never to font-based heading
// checks.
package ocr
