package outline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nao1215/pdftoc/internal/model"
)

// ProcessDocument runs the full per-document orchestration: open the
// document, resolve its title, build its outline.
//
// The return value is always usable. Any failure, an open error or a
// panic out of the PDF reader (which is how malformed containers surface
// from the underlying library), is logged with the document identifier
// and converted into the degraded result {stem, []}. Errors never
// propagate past this boundary and no retries are performed; a failure
// is final for the document within one run.
func (e *Engine) ProcessDocument(ctx context.Context, opener Opener, path string) (result *model.Result) {
	name := filepath.Base(path)
	stem := Stem(path)

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("document processing failed",
				"document", name,
				"error", fmt.Sprintf("panic: %v", r),
			)
			result = model.NewDegradedResult(stem)
		}
	}()

	doc, err := opener.Open(path)
	if err != nil {
		e.logger.Error("document open failed", "document", name, "error", err)
		return model.NewDegradedResult(stem)
	}
	defer func() {
		if err := doc.Close(); err != nil {
			e.logger.Debug("document close failed", "document", name, "error", err)
		}
	}()

	title := e.ResolveTitle(ctx, doc)
	entries := e.BuildOutline(ctx, doc)

	e.logger.Info("document processed", "document", name, "headings", len(entries))

	return model.NewResult(title, entries)
}

// Stem returns the file name without directory or extension; it names
// degraded results and output records.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
