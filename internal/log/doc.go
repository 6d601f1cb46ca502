// Package log provides logging functionality with automatic truncation
// of oversized values, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Truncation of oversized attribute values (page text, OCR output)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// Document processing routinely logs fragments of extracted text, and a
// single malformed page can produce megabytes of it. The TruncateHandler
// caps every string attribute so a debug run stays readable and log
// files stay bounded.
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("page text extracted",
//	    "document", "paper.pdf",
//	    "text", pageText, // Truncated if oversized
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
