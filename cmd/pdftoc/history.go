package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/pdftoc/internal/config"
	"github.com/nao1215/pdftoc/internal/database"
	"github.com/nao1215/pdftoc/internal/report"
)

// NewHistoryCmd creates the history command.
// This command inspects results stored in the database by previous runs.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [document-stem]",
		Short: "Show extraction results stored in the database",
		Long: `History displays extraction results saved by 'pdftoc extract --save-db'.

Without arguments it lists every stored document with its title, heading
count, and the time of the last extraction. With a document stem it
prints that document's stored outline.

Examples:
  # List all stored documents
  pdftoc history

  # Show the stored outline for output/paper.json's source document
  pdftoc history paper

  # Show the stored outline as JSON
  pdftoc history --json paper`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output the stored record in JSON format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	// Never create an empty database just to report it holds nothing.
	db, err := database.Open(config.XDGDataDir(), database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no stored results (run 'pdftoc extract --save-db' first): %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if len(args) == 0 {
		return listStoredResults(ctx, db)
	}
	return showStoredResult(ctx, db, args[0], jsonOutput)
}

// listStoredResults lists metadata for every stored document.
func listStoredResults(ctx context.Context, db *database.ResultDB) error {
	metas, err := db.ListResults(ctx)
	if err != nil {
		return fmt.Errorf("failed to list results: %w", err)
	}

	if len(metas) == 0 {
		fmt.Println("No stored results found in the database.")
		fmt.Println("\nUse 'pdftoc extract --save-db' to store extraction results.")
		return nil
	}

	fmt.Printf("Stored results (%d):\n\n", len(metas))
	fmt.Printf("  %-24s  %-8s  %-20s  %s\n", "Document", "Headings", "Extracted", "Title")
	fmt.Println("  " + strings.Repeat("-", 80))

	for _, meta := range metas {
		title := meta.Title
		if meta.Degraded {
			title += " (degraded)"
		}
		fmt.Printf("  %-24s  %-8d  %-20s  %s\n",
			meta.Stem,
			meta.HeadingCount,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			title,
		)
	}

	fmt.Println("\nUse 'pdftoc history <document-stem>' to show a stored outline.")
	return nil
}

// showStoredResult prints one document's stored record.
func showStoredResult(ctx context.Context, db *database.ResultDB, stem string, jsonOutput bool) error {
	result, err := db.GetResult(ctx, stem)
	if err != nil {
		return fmt.Errorf("failed to get result: %w", err)
	}
	if result == nil {
		return fmt.Errorf("no stored result for %q (use 'pdftoc history' to list stored documents)", stem)
	}

	var w report.Writer
	if jsonOutput {
		w = report.NewJSONWriter(os.Stdout, report.WithPrettyPrint())
	} else {
		w = report.NewTextWriter(os.Stdout)
	}

	_, err = w.Write(result)
	return err
}
