package pdfdoc

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/nao1215/pdftoc/internal/model"
)

func TestOpenError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &OpenError{Path: "a.pdf", Err: cause}

	if got := err.Error(); got != "open document a.pdf: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should unwrap to the cause")
	}
}

func TestOpenerOpen(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns OpenError", func(t *testing.T) {
		t.Parallel()

		opener := NewOpener()
		path := filepath.Join(t.TempDir(), "missing.pdf")

		_, err := opener.Open(path)
		if err == nil {
			t.Fatal("Open() should fail for a missing file")
		}

		var openErr *OpenError
		if !errors.As(err, &openErr) {
			t.Fatalf("Open() error = %T, want *OpenError", err)
		}
		if openErr.Path != path {
			t.Errorf("OpenError.Path = %q, want %q", openErr.Path, path)
		}
	})

	t.Run("opener implements the engine contract", func(t *testing.T) {
		t.Parallel()

		var _ interface {
			Open(path string) (model.Document, error)
		} = NewOpener()
	})
}

func TestFlattenBookmarks(t *testing.T) {
	t.Parallel()

	t.Run("nesting depth becomes the level", func(t *testing.T) {
		t.Parallel()

		bms := []pdfcpu.Bookmark{
			{
				Title:    "Introduction",
				PageFrom: 1,
				Kids: []pdfcpu.Bookmark{
					{Title: "Motivation", PageFrom: 2},
					{
						Title:    "Scope",
						PageFrom: 3,
						Kids: []pdfcpu.Bookmark{
							{Title: "Limits", PageFrom: 3},
						},
					},
				},
			},
			{Title: "Conclusion", PageFrom: 9},
		}

		var entries []model.EmbeddedEntry
		flattenBookmarks(bms, 1, &entries)

		want := []model.EmbeddedEntry{
			{Level: 1, Text: "Introduction", Page: 1},
			{Level: 2, Text: "Motivation", Page: 2},
			{Level: 2, Text: "Scope", Page: 3},
			{Level: 3, Text: "Limits", Page: 3},
			{Level: 1, Text: "Conclusion", Page: 9},
		}

		if len(entries) != len(want) {
			t.Fatalf("got %d entries, want %d", len(entries), len(want))
		}
		for i, e := range entries {
			if e != want[i] {
				t.Errorf("entries[%d] = %+v, want %+v", i, e, want[i])
			}
		}
	})

	t.Run("empty forest yields no entries", func(t *testing.T) {
		t.Parallel()

		var entries []model.EmbeddedEntry
		flattenBookmarks(nil, 1, &entries)
		if len(entries) != 0 {
			t.Errorf("got %d entries, want 0", len(entries))
		}
	})
}
