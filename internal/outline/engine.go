package outline

import (
	"context"
	"log/slog"

	"github.com/nao1215/pdftoc/internal/config"
	"github.com/nao1215/pdftoc/internal/model"
)

// Opener opens a document by path. The PDF adapter implements it.
type Opener interface {
	// Open opens the document at path. Failures are reported as
	// *pdfdoc.OpenError by the default adapter.
	Open(path string) (model.Document, error)
}

// Recognizer performs optical character recognition on a rendered page.
// Implementations may return an empty string for pages with no
// recognizable text; they never return structured layout.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Engine is the per-run inference engine: the pattern table, the
// configuration knobs, and the OCR collaborator.
//
// An Engine is immutable after construction and safe for concurrent use;
// all per-document state (accumulators, dedup sets) lives on the stack
// of the processing call.
type Engine struct {
	table  *Table
	cfg    *config.Config
	ocr    Recognizer
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithOCR sets the OCR collaborator. Without one, OCR-assisted fallbacks
// are skipped and pages without extractable text contribute nothing.
func WithOCR(r Recognizer) Option {
	return func(e *Engine) {
		e.ocr = r
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an Engine with the given configuration.
// The pattern table is built once here and shared by every document the
// engine processes.
func NewEngine(cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		table: NewTable(),
		cfg:   cfg,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Table returns the engine's pattern table.
func (e *Engine) Table() *Table {
	return e.table
}

// ocrPage renders one page at the configured DPI and runs it through the
// OCR collaborator. Every failure mode (no collaborator, render error,
// recognition error, timeout) collapses to an empty string, which is
// all downstream logic needs to know.
func (e *Engine) ocrPage(ctx context.Context, page model.Page) string {
	if e.ocr == nil {
		return ""
	}

	image, err := page.RenderImage(e.cfg.OCRDPI)
	if err != nil {
		e.logger.Debug("page render failed", "error", err)
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.OCRTimeout)
	defer cancel()

	text, err := e.ocr.Recognize(ctx, image)
	if err != nil {
		e.logger.Debug("ocr failed", "error", err)
		return ""
	}
	return text
}
