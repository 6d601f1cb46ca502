package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The inference defaults mirror the behavior the heading patterns were
// tuned against; the batch defaults are chosen for typical document sets.
const (
	// DefaultSizeThreshold is the minimum font size (in points) for a line
	// to be considered a heading candidate unless it is bold. Body text in
	// most documents sits at 9-12pt, so 15pt reliably separates headings
	// from paragraphs without catching emphasized inline text.
	DefaultSizeThreshold = 15.0

	// DefaultMaxPagesScan caps how many pages the heuristic scan visits.
	// Headings relevant to a table of contents overwhelmingly appear early;
	// scanning beyond 50 pages adds latency with little outline gain.
	DefaultMaxPagesScan = 50

	// DefaultOCRFallback enables OCR assist for documents whose first page
	// has no extractable text (typically scanned documents).
	DefaultOCRFallback = true

	// DefaultOCREveryPage extends OCR assist to every scanned page during
	// the heuristic scan. Disabled by default because OCR dominates latency
	// and OCR output carries no font data for the classifier anyway.
	DefaultOCREveryPage = false

	// DefaultOCRDPI is the rendering resolution for OCR. 200 DPI balances
	// recognition quality against render and recognition time.
	DefaultOCRDPI = 200

	// DefaultOCRTimeout bounds a single OCR invocation. A page that cannot
	// be recognized within this window is treated as empty text rather
	// than stalling the whole batch.
	DefaultOCRTimeout = 30 * time.Second

	// DefaultBatchSize is the number of documents processed concurrently.
	// Document processing is CPU- and subprocess-bound, so a small pool
	// is enough; use 1 for strictly sequential processing.
	DefaultBatchSize = 4

	// DefaultInputDir is the directory scanned for PDF files.
	DefaultInputDir = "input"

	// DefaultOutputDir is the directory JSON records are written to.
	DefaultOutputDir = "output"

	// AppName is the application name used for XDG directory paths.
	AppName = "pdftoc"
)

// Config holds all configuration options for pdftoc.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., OCRConfig, BatchConfig). The number of options is manageable, and
// nesting would add complexity without significant benefit.
type Config struct {
	// SizeThreshold is the minimum max-font-size (points) for a line to
	// pass the heading classifier's gate when it is not bold.
	SizeThreshold float64

	// MaxPagesScan is the maximum number of pages the heuristic outline
	// scan visits per document. Documents with embedded outlines are not
	// affected.
	MaxPagesScan int

	// OCRFallback enables OCR assist at all. When false, pages without
	// extractable text contribute nothing to title or outline inference.
	OCRFallback bool

	// OCREveryPage extends OCR assist from the title page to every page
	// visited by the heuristic scan. Only effective when OCRFallback is
	// also true; the two gates are deliberately independent.
	OCREveryPage bool

	// OCRDPI is the resolution pages are rendered at before recognition.
	OCRDPI int

	// OCRTimeout bounds each OCR invocation. On expiry the page is
	// treated as having no recognizable text.
	OCRTimeout time.Duration

	// InputDir is the directory enumerated for .pdf files
	// (case-insensitive extension match).
	InputDir string

	// OutputDir is the directory one JSON record per document is written
	// to, named by the input file's stem. Created if missing.
	OutputDir string

	// BatchSize is the number of documents processed concurrently.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .pdftoc in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// SummaryFile, when set, is the path a Markdown batch summary is
	// written to after all documents are processed.
	SummaryFile string

	// SaveToDB indicates whether to persist results to the SQLite
	// results database under DBDir.
	SaveToDB bool

	// DBDir is the directory holding the results database. Defaults to
	// the XDG data directory when SaveToDB is enabled.
	DBDir string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero (threshold, DPI, dirs).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		SizeThreshold: DefaultSizeThreshold,
		MaxPagesScan:  DefaultMaxPagesScan,
		OCRFallback:   DefaultOCRFallback,
		OCREveryPage:  DefaultOCREveryPage,
		OCRDPI:        DefaultOCRDPI,
		OCRTimeout:    DefaultOCRTimeout,
		InputDir:      DefaultInputDir,
		OutputDir:     DefaultOutputDir,
		BatchSize:     DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for pdftoc.
// On Linux: ~/.local/share/pdftoc
// On macOS: ~/Library/Application Support/pdftoc
// On Windows: %LOCALAPPDATA%\pdftoc
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any processing begins.
func (c *Config) Validate() error {
	if c.SizeThreshold <= 0 {
		return ErrInvalidSizeThreshold
	}

	if c.MaxPagesScan <= 0 {
		return ErrInvalidMaxPagesScan
	}

	if c.OCRDPI <= 0 {
		return ErrInvalidOCRDPI
	}

	if c.OCRTimeout <= 0 {
		return ErrInvalidOCRTimeout
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.InputDir == "" {
		return ErrNoInputDir
	}

	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	return nil
}
