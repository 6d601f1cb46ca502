package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/pdftoc/internal/batch"
	"github.com/nao1215/pdftoc/internal/config"
	"github.com/nao1215/pdftoc/internal/database"
	"github.com/nao1215/pdftoc/internal/log"
	"github.com/nao1215/pdftoc/internal/model"
	"github.com/nao1215/pdftoc/internal/ocr"
	"github.com/nao1215/pdftoc/internal/outline"
	"github.com/nao1215/pdftoc/internal/pdfdoc"
	"github.com/nao1215/pdftoc/internal/report"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [pdf-file...]",
		Short: "Extract titles and outlines from PDF files",
		Long: `Extract infers a title and a heading outline for each PDF file and writes
one JSON record per document into the output directory.

Without arguments, every .pdf file in the input directory is processed
(the extension match is case-insensitive). With arguments, only the named
files are processed. A document that cannot be parsed still produces a
record with its file stem as the title and an empty outline; the batch
continues regardless of individual failures.

Examples:
  # Process all PDFs in ./input, writing records to ./output
  pdftoc extract

  # Process specific files
  pdftoc extract paper.pdf thesis.pdf

  # Custom directories and concurrency
  pdftoc extract -i documents -o records -b 8

  # Lower the heading font-size threshold and scan more pages
  pdftoc extract --size-threshold 13 --max-pages 100

  # Disable OCR assist for scanned documents
  pdftoc extract --ocr=false

  # Write a Markdown summary of the run and save results to the database
  pdftoc extract --summary run.md --save-db

Configuration file (.pdftoc) example:
  size_threshold: 13.5
  max_pages_scan: 100
  ocr_fallback: true
  ocr_dpi: 300
  batch_size: 8
  output_dir: records`,
		Args: cobra.ArbitraryArgs,
		RunE: runExtractCmd,
	}

	// Input/output flags
	cmd.Flags().StringP("input", "i", config.DefaultInputDir,
		"Directory to scan for PDF files (ignored when files are given as arguments)")
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Directory JSON records are written to (created if missing)")

	// Inference flags
	cmd.Flags().Float64P("size-threshold", "s", config.DefaultSizeThreshold,
		"Minimum font size (points) for a non-bold line to qualify as a heading")
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPagesScan,
		"Maximum number of pages the heuristic outline scan visits per document")

	// OCR flags
	cmd.Flags().Bool("ocr", config.DefaultOCRFallback,
		"Enable OCR assist for documents without extractable text")
	cmd.Flags().Bool("ocr-every-page", config.DefaultOCREveryPage,
		"Extend OCR assist to every scanned page, not just the title page")
	cmd.Flags().Int("ocr-dpi", config.DefaultOCRDPI,
		"Rendering resolution for OCR")
	cmd.Flags().Duration("ocr-timeout", config.DefaultOCRTimeout,
		"Timeout for a single OCR invocation")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of documents processed concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pdftoc in current or home directory)")

	// Report flags
	cmd.Flags().StringP("summary", "m", "",
		"Write a Markdown summary of the run to the specified file")
	cmd.Flags().Bool("save-db", false,
		"Save results to the SQLite database in the XDG data directory")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runExtract(ctx, cfg, args, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra flags.
// File values override the defaults; flags the user actually set
// override the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load overrides from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags the user set override the file.
	if cmd.Flags().Changed("input") {
		if cfg.InputDir, err = cmd.Flags().GetString("input"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output") {
		if cfg.OutputDir, err = cmd.Flags().GetString("output"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("size-threshold") {
		if cfg.SizeThreshold, err = cmd.Flags().GetFloat64("size-threshold"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("max-pages") {
		if cfg.MaxPagesScan, err = cmd.Flags().GetInt("max-pages"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("ocr") {
		if cfg.OCRFallback, err = cmd.Flags().GetBool("ocr"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("ocr-every-page") {
		if cfg.OCREveryPage, err = cmd.Flags().GetBool("ocr-every-page"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("ocr-dpi") {
		if cfg.OCRDPI, err = cmd.Flags().GetInt("ocr-dpi"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("ocr-timeout") {
		if cfg.OCRTimeout, err = cmd.Flags().GetDuration("ocr-timeout"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("batch") {
		if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
			return nil, err
		}
	}

	cfg.SummaryFile, err = cmd.Flags().GetString("summary")
	if err != nil {
		return nil, err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save-db")
	if err != nil {
		return nil, err
	}
	if cfg.SaveToDB {
		cfg.DBDir = config.XDGDataDir()
	}

	return cfg, nil
}

// runExtract executes the extraction run.
func runExtract(ctx context.Context, cfg *config.Config, args []string, logger *slog.Logger) error {
	paths := args
	if len(paths) == 0 {
		var err error
		paths, err = batch.ListDocuments(cfg.InputDir)
		if err != nil {
			return err
		}
	}

	if len(paths) == 0 {
		fmt.Printf("No PDF files found in %s\n", cfg.InputDir)
		return nil
	}
	fmt.Printf("Found %d PDF file(s)\n\n", len(paths))

	logger.Info("starting extraction",
		"documents", len(paths),
		"batchSize", cfg.BatchSize,
		"ocrFallback", cfg.OCRFallback,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.ResultDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	engine := newEngine(cfg, logger)
	opener := pdfdoc.NewOpener(pdfdoc.WithLogger(logger))
	processor := batch.ProcessorFunc(func(ctx context.Context, path string) *model.Result {
		return engine.ProcessDocument(ctx, opener, path)
	})

	// Progress output and database writes stream from the worker
	// goroutines, so both need the mutex.
	var mu sync.Mutex
	var done int
	runner := batch.NewRunner(processor,
		batch.WithConcurrency(cfg.BatchSize),
		batch.WithOutputDir(cfg.OutputDir),
		batch.WithLogger(logger),
		batch.WithOnResult(func(item report.Item, result *model.Result) {
			mu.Lock()
			defer mu.Unlock()

			done++
			status := fmt.Sprintf("%d headings", item.Headings)
			if item.Degraded {
				status = "failed, fallback record written"
			}
			fmt.Printf("[%d/%d] %s -> %s.json (%s)\n", done, len(paths), item.Name, item.Name, status)

			if db != nil {
				if err := db.SaveResult(ctx, item.Name, result); err != nil {
					logger.Error("failed to save result", "document", item.Name, "error", err)
				}
			}
		}),
	)

	summary, err := runner.Run(ctx, paths)
	if err != nil {
		return err
	}

	if cfg.SummaryFile != "" {
		if err := writeSummaryFile(cfg.SummaryFile, summary); err != nil {
			logger.Error("failed to write summary", "path", cfg.SummaryFile, "error", err)
		} else {
			fmt.Printf("\nSummary written to %s\n", cfg.SummaryFile)
		}
	}

	fmt.Printf("\nProcessed %d document(s) in %s (%d degraded)\n",
		len(summary.Items),
		summary.Elapsed.Round(time.Millisecond),
		summary.DegradedCount(),
	)

	return nil
}

// newEngine builds the inference engine, attaching OCR when it is both
// enabled and available on this host.
func newEngine(cfg *config.Config, logger *slog.Logger) *outline.Engine {
	opts := []outline.Option{outline.WithLogger(logger)}

	if cfg.OCRFallback {
		rec, err := ocr.NewTesseract()
		if err != nil {
			logger.Warn("ocr assist unavailable, scanned documents will degrade", "error", err)
		} else {
			opts = append(opts, outline.WithOCR(rec))
		}
	}

	return outline.NewEngine(cfg, opts...)
}

// writeSummaryFile writes the Markdown batch summary.
func writeSummaryFile(path string, summary *report.Summary) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create summary directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	_, err = report.NewMarkdownWriter(f).WriteSummary(summary)
	return err
}
