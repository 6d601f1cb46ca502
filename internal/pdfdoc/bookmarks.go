package pdfdoc

import (
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/nao1215/pdftoc/internal/model"
)

// readBookmarks extracts the document's embedded outline via pdfcpu and
// flattens it depth-first, nesting depth becoming the entry level.
//
// ledongthuc/pdf exposes the outline tree but not its page targets, so
// the file is reopened through pdfcpu, which resolves destinations to
// page numbers. Extraction is best-effort: any failure, including the
// common case of a document with no outline at all, yields an empty
// slice.
func readBookmarks(path string, logger *slog.Logger) []model.EmbeddedEntry {
	f, err := os.Open(path) //nolint:gosec // Caller-provided document path is intentional
	if err != nil {
		return nil
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	bms, err := api.Bookmarks(f, pdfcpumodel.NewDefaultConfiguration())
	if err != nil {
		logger.Debug("bookmark extraction failed", "document", path, "error", err)
		return nil
	}

	var entries []model.EmbeddedEntry
	flattenBookmarks(bms, 1, &entries)
	return entries
}

// flattenBookmarks appends the bookmark forest to entries in pre-order.
func flattenBookmarks(bms []pdfcpu.Bookmark, depth int, entries *[]model.EmbeddedEntry) {
	for _, bm := range bms {
		*entries = append(*entries, model.EmbeddedEntry{
			Level: depth,
			Text:  bm.Title,
			Page:  bm.PageFrom,
		})
		if len(bm.Kids) > 0 {
			flattenBookmarks(bm.Kids, depth+1, entries)
		}
	}
}
