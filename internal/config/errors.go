package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidSizeThreshold is returned when the heading size threshold
	// is not positive. A zero or negative threshold would classify every
	// line as a heading candidate.
	ErrInvalidSizeThreshold = errors.New("invalid size threshold: must be positive")

	// ErrInvalidMaxPagesScan is returned when the scan page cap is not
	// positive. A cap of zero would make the heuristic scan a no-op.
	ErrInvalidMaxPagesScan = errors.New("invalid max pages scan: must be positive")

	// ErrInvalidOCRDPI is returned when the OCR rendering resolution is
	// not positive.
	ErrInvalidOCRDPI = errors.New("invalid OCR DPI: must be positive")

	// ErrInvalidOCRTimeout is returned when the per-invocation OCR timeout
	// is not positive. Use a generous timeout rather than disabling it.
	ErrInvalidOCRTimeout = errors.New("invalid OCR timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// Use 1 for sequential processing.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrNoInputDir is returned when no input directory is configured.
	ErrNoInputDir = errors.New("no input directory specified")

	// ErrNoOutputDir is returned when no output directory is configured.
	ErrNoOutputDir = errors.New("no output directory specified")
)
