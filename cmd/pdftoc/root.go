// Package main provides the entry point for the pdftoc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pdftoc.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdftoc",
		Short: "Infer titles and heading outlines from PDF files",
		Long: `pdftoc infers a document title and a heading outline (H1-H6) from PDF files.

Documents with embedded bookmarks get their outline verbatim. Everything
else goes through heuristic text analysis: numbered sections, appendices,
chapters, and font-prominence checks. Scanned documents can be assisted
by OCR when tesseract and poppler-utils are installed.

Each input produces one JSON record: {"title": ..., "outline": [...]}.
A document that cannot be parsed still produces a record with its file
stem as the title and an empty outline; a batch run never aborts.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
