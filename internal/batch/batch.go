package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/pdftoc/internal/model"
	"github.com/nao1215/pdftoc/internal/outline"
	"github.com/nao1215/pdftoc/internal/report"
)

// Processor turns one document path into a result.
// The result is always usable; processing failures surface as degraded
// results, never as errors.
type Processor interface {
	Process(ctx context.Context, path string) *model.Result
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, path string) *model.Result

// Process calls f.
func (f ProcessorFunc) Process(ctx context.Context, path string) *model.Result {
	return f(ctx, path)
}

// Runner handles concurrent processing of multiple documents.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate Runner rather than adding batch
// functionality to the inference engine because:
// 1. It keeps the engine focused on single-document inference
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type Runner struct {
	// processor produces the result for each document.
	processor Processor

	// concurrency is the maximum number of documents processed at once.
	concurrency int

	// outputDir receives one <stem>.json record per input document.
	outputDir string

	// onResult, when set, is called once per completed document. It is
	// called from the goroutine that processed the document, so it must
	// be safe for concurrent use.
	onResult func(item report.Item, result *model.Result)

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency sets the maximum number of concurrent documents.
// Default is 4 if not specified.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithOutputDir sets the directory the JSON records are written to.
func WithOutputDir(dir string) Option {
	return func(r *Runner) {
		r.outputDir = dir
	}
}

// WithOnResult registers a callback invoked once per completed document.
func WithOnResult(fn func(item report.Item, result *model.Result)) Option {
	return func(r *Runner) {
		r.onResult = fn
	}
}

// WithLogger sets a custom logger for batch processing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner that feeds documents to the given processor.
func NewRunner(processor Processor, opts ...Option) *Runner {
	r := &Runner{
		processor:   processor,
		concurrency: 4,
		outputDir:   "output",
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// ListDocuments returns the PDF files directly inside dir, sorted by
// name. The extension match is case-insensitive, so SCAN.PDF is picked
// up alongside scan.pdf. Subdirectories are not descended into.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}

// Run processes the given documents concurrently and writes one JSON
// record per document into the output directory.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each document gets its own goroutine, but only 'concurrency'
// goroutines run simultaneously.
//
// The returned summary covers every document, including failed ones.
// The error return indicates that the run was cancelled or that an
// output record could not be written; inference failures are never
// errors.
func (r *Runner) Run(ctx context.Context, paths []string) (*report.Summary, error) {
	r.logger.Info("starting batch processing",
		"total_documents", len(paths),
		"concurrency", r.concurrency,
		"output_dir", r.outputDir,
	)

	started := time.Now()

	if err := os.MkdirAll(r.outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	// Pre-allocated so each goroutine writes a distinct index and the
	// summary keeps input order.
	items := make([]report.Item, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			r.logger.Info("processing document",
				"document", filepath.Base(path),
				"index", i+1,
				"total", len(paths),
			)

			itemStart := time.Now()
			result := r.processor.Process(ctx, path)

			item := report.Item{
				Name:     outline.Stem(path),
				Title:    result.Title,
				Headings: len(result.Outline),
				Degraded: result.Degraded,
				Elapsed:  time.Since(itemStart),
			}
			items[i] = item

			if err := r.writeRecord(item.Name, result); err != nil {
				r.logger.Error("record write failed",
					"document", filepath.Base(path),
					"error", err,
				)
				return err
			}

			if r.onResult != nil {
				r.onResult(item, result)
			}

			return nil
		})
	}

	err := g.Wait()

	summary := &report.Summary{
		Items:   items,
		Started: started,
		Elapsed: time.Since(started),
	}

	r.logger.Info("batch processing complete",
		"total_documents", len(paths),
		"degraded", summary.DegradedCount(),
		"elapsed", summary.Elapsed,
	)

	return summary, err
}

// writeRecord writes one pretty-printed JSON record to
// <outputDir>/<stem>.json.
func (r *Runner) writeRecord(stem string, result *model.Result) error {
	path := filepath.Join(r.outputDir, stem+".json")

	f, err := os.Create(path) //nolint:gosec // Destination derives from the configured output directory
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := report.NewJSONWriter(f, report.WithPrettyPrint())
	if _, err := w.Write(result); err != nil {
		f.Close() //nolint:errcheck,gosec // Write error takes precedence
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
