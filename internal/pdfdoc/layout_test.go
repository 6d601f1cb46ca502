package pdfdoc

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

// char builds one positioned character for layout tests.
func char(s string, x, y, w, size float64, font string) pdflib.Text {
	return pdflib.Text{S: s, X: x, Y: y, W: w, FontSize: size, Font: font}
}

func TestBuildBlocks(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields no blocks", func(t *testing.T) {
		t.Parallel()

		if got := buildBlocks(nil); got != nil {
			t.Errorf("buildBlocks(nil) = %v, want nil", got)
		}
	})

	t.Run("whitespace-only fragments are dropped", func(t *testing.T) {
		t.Parallel()

		texts := []pdflib.Text{
			char(" ", 10, 700, 5, 12, "Helvetica"),
			char("\t", 20, 700, 5, 12, "Helvetica"),
		}
		if got := buildBlocks(texts); got != nil {
			t.Errorf("buildBlocks() = %v, want nil", got)
		}
	})

	t.Run("characters on one baseline form one line", func(t *testing.T) {
		t.Parallel()

		texts := []pdflib.Text{
			char("H", 10, 700, 8, 14, "Helvetica"),
			char("i", 18, 700, 4, 14, "Helvetica"),
		}

		blocks := buildBlocks(texts)
		if len(blocks) != 1 || len(blocks[0].Lines) != 1 {
			t.Fatalf("got %d blocks, want 1 block with 1 line", len(blocks))
		}
		if got := blocks[0].Lines[0].Text(); got != "Hi" {
			t.Errorf("line text = %q, want %q", got, "Hi")
		}
	})

	t.Run("content stream order does not matter", func(t *testing.T) {
		t.Parallel()

		// Same characters, emitted right to left and bottom to top.
		texts := []pdflib.Text{
			char("b", 18, 680, 8, 12, "Helvetica"),
			char("a", 10, 680, 8, 12, "Helvetica"),
			char("B", 18, 700, 8, 12, "Helvetica"),
			char("A", 10, 700, 8, 12, "Helvetica"),
		}

		blocks := buildBlocks(texts)
		if len(blocks) != 1 || len(blocks[0].Lines) != 2 {
			t.Fatalf("got %+v, want 1 block with 2 lines", blocks)
		}
		if got := blocks[0].Lines[0].Text(); got != "AB" {
			t.Errorf("first line = %q, want %q", got, "AB")
		}
		if got := blocks[0].Lines[1].Text(); got != "ab" {
			t.Errorf("second line = %q, want %q", got, "ab")
		}
	})

	t.Run("small baseline jitter stays in one row", func(t *testing.T) {
		t.Parallel()

		texts := []pdflib.Text{
			char("x", 10, 700, 6, 12, "Helvetica"),
			char("y", 16, 698.5, 6, 12, "Helvetica"),
		}

		blocks := buildBlocks(texts)
		if len(blocks) != 1 || len(blocks[0].Lines) != 1 {
			t.Fatalf("got %+v, want 1 block with 1 line", blocks)
		}
	})

	t.Run("large vertical gap starts a new block", func(t *testing.T) {
		t.Parallel()

		texts := []pdflib.Text{
			char("Title", 10, 700, 30, 12, "Helvetica"),
			// 12pt line followed by a 100pt gap, well past the block
			// threshold.
			char("Body", 10, 600, 30, 12, "Helvetica"),
		}

		blocks := buildBlocks(texts)
		if len(blocks) != 2 {
			t.Fatalf("got %d blocks, want 2", len(blocks))
		}
	})

	t.Run("adjacent lines share a block", func(t *testing.T) {
		t.Parallel()

		texts := []pdflib.Text{
			char("one", 10, 700, 20, 12, "Helvetica"),
			char("two", 10, 686, 20, 12, "Helvetica"),
		}

		blocks := buildBlocks(texts)
		if len(blocks) != 1 || len(blocks[0].Lines) != 2 {
			t.Fatalf("got %+v, want 1 block with 2 lines", blocks)
		}
	})
}

func TestRowToLine(t *testing.T) {
	t.Parallel()

	t.Run("font change splits spans", func(t *testing.T) {
		t.Parallel()

		texts := []pdflib.Text{
			char("Bold", 10, 700, 26, 14, "Helvetica-Bold"),
			char("plain", 36, 700, 28, 12, "Helvetica"),
		}

		blocks := buildBlocks(texts)
		spans := blocks[0].Lines[0].Spans
		if len(spans) != 2 {
			t.Fatalf("got %d spans, want 2", len(spans))
		}
		if spans[0].Font != "Helvetica-Bold" || spans[0].FontSize != 14 {
			t.Errorf("first span = %+v, want Helvetica-Bold at 14", spans[0])
		}
		if spans[1].Font != "Helvetica" || spans[1].FontSize != 12 {
			t.Errorf("second span = %+v, want Helvetica at 12", spans[1])
		}
	})

	t.Run("wide horizontal gap inserts a space", func(t *testing.T) {
		t.Parallel()

		// Gap between the words is 10pt, far above 0.25 * 12.
		texts := []pdflib.Text{
			char("hello", 10, 700, 30, 12, "Helvetica"),
			char("world", 50, 700, 30, 12, "Helvetica"),
		}

		blocks := buildBlocks(texts)
		if got := blocks[0].Lines[0].Text(); got != "hello world" {
			t.Errorf("line text = %q, want %q", got, "hello world")
		}
	})

	t.Run("touching characters get no space", func(t *testing.T) {
		t.Parallel()

		texts := []pdflib.Text{
			char("a", 10, 700, 6, 12, "Helvetica"),
			char("b", 16, 700, 6, 12, "Helvetica"),
		}

		blocks := buildBlocks(texts)
		if got := blocks[0].Lines[0].Text(); got != "ab" {
			t.Errorf("line text = %q, want %q", got, "ab")
		}
	})
}
