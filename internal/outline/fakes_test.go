package outline

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/nao1215/pdftoc/internal/config"
	"github.com/nao1215/pdftoc/internal/model"
)

// fakePage is an in-memory model.Page.
type fakePage struct {
	text      string
	blocks    []model.Block
	image     []byte
	renderErr error
}

func (p *fakePage) PlainText() string               { return p.text }
func (p *fakePage) StructuredBlocks() []model.Block { return p.blocks }
func (p *fakePage) RenderImage(int) ([]byte, error) { return p.image, p.renderErr }

// fakeDoc is an in-memory model.Document.
type fakeDoc struct {
	meta     string
	fallback string
	pages    []*fakePage
	embedded []model.EmbeddedEntry
	closed   bool
}

func (d *fakeDoc) MetadataTitle() string                  { return d.meta }
func (d *fakeDoc) PageCount() int                         { return len(d.pages) }
func (d *fakeDoc) EmbeddedOutline() []model.EmbeddedEntry { return d.embedded }
func (d *fakeDoc) FallbackName() string                   { return d.fallback }
func (d *fakeDoc) Page(i int) model.Page                  { return d.pages[i] }
func (d *fakeDoc) Close() error                           { d.closed = true; return nil }

// fakeOCR records recognition calls and returns canned text.
type fakeOCR struct {
	text  string
	err   error
	calls int
}

func (o *fakeOCR) Recognize(_ context.Context, _ []byte) (string, error) {
	o.calls++
	return o.text, o.err
}

// fakeOpener returns one canned document or error for any path.
type fakeOpener struct {
	doc model.Document
	err error
}

func (o *fakeOpener) Open(string) (model.Document, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.doc, nil
}

// panickingOpener simulates a PDF reader blowing up mid-open.
type panickingOpener struct{}

func (panickingOpener) Open(string) (model.Document, error) {
	panic("malformed xref table")
}

var errOpenFailed = errors.New("container unreadable")

// line builds a single-span line with the given font attributes.
func line(text string, size float64, font string) model.Line {
	return model.Line{Spans: []model.Span{{Text: text, FontSize: size, Font: font}}}
}

// blockOf wraps lines into one block.
func blockOf(lines ...model.Line) model.Block {
	return model.Block{Lines: lines}
}

// testEngine builds an engine with a quiet logger and optional tweaks.
func testEngine(ocr Recognizer, mutate func(*config.Config)) *Engine {
	cfg := config.NewConfig()
	if mutate != nil {
		mutate(cfg)
	}

	opts := []Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}
	if ocr != nil {
		opts = append(opts, WithOCR(ocr))
	}
	return NewEngine(cfg, opts...)
}
