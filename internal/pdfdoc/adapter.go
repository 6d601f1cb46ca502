package pdfdoc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/nao1215/pdftoc/internal/model"
)

// OpenError reports that a document container could not be opened.
// It is the only error type the adapter returns from Open.
type OpenError struct {
	// Path is the document locator as passed to Open.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *OpenError) Error() string {
	return fmt.Sprintf("open document %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// Opener opens PDF files as model.Document values.
// It is stateless apart from its logger and safe for concurrent use.
type Opener struct {
	logger *slog.Logger
}

// OpenerOption configures an Opener.
type OpenerOption func(*Opener)

// WithLogger sets a custom logger for the opener and the documents it
// produces.
func WithLogger(logger *slog.Logger) OpenerOption {
	return func(o *Opener) {
		o.logger = logger
	}
}

// NewOpener creates an Opener.
func NewOpener(opts ...OpenerOption) *Opener {
	o := &Opener{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Open opens the PDF at path.
//
// Failures, including panics out of the underlying reader while parsing
// the container, are reported as *OpenError. Bookmark extraction is
// best-effort: a document whose outline tree cannot be read is treated
// as having none.
func (o *Opener) Open(path string) (doc model.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &OpenError{Path: path, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	d := &document{
		file:   f,
		reader: reader,
		path:   path,
		logger: o.logger,
	}
	d.metaTitle = metadataTitle(reader)
	d.bookmarks = readBookmarks(path, o.logger)

	return d, nil
}

// document implements model.Document over an open PDF file.
type document struct {
	file      *os.File
	reader    *pdflib.Reader
	path      string
	metaTitle string
	bookmarks []model.EmbeddedEntry
	logger    *slog.Logger
}

// MetadataTitle returns the Info dictionary title, or "".
func (d *document) MetadataTitle() string {
	return d.metaTitle
}

// PageCount returns the number of pages.
func (d *document) PageCount() int {
	return d.reader.NumPage()
}

// EmbeddedOutline returns the document's bookmarks flattened depth-first.
func (d *document) EmbeddedOutline() []model.EmbeddedEntry {
	return d.bookmarks
}

// FallbackName returns the file name without directory or extension.
func (d *document) FallbackName() string {
	base := filepath.Base(d.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Page returns the zero-based page at index i.
func (d *document) Page(i int) model.Page {
	return &page{doc: d, index: i}
}

// Close closes the underlying file.
func (d *document) Close() error {
	return d.file.Close()
}

// page implements model.Page for one page of a document.
type page struct {
	doc   *document
	index int // zero-based
}

// PlainText returns the page's extracted text. Extraction errors yield
// an empty string; the page is then indistinguishable from a scanned
// one, which is exactly how the OCR gates want to see it.
func (p *page) PlainText() string {
	pg := p.doc.reader.Page(p.index + 1)
	if pg.V.IsNull() {
		return ""
	}

	text, err := pg.GetPlainText(nil)
	if err != nil {
		p.doc.logger.Debug("text extraction failed",
			"document", p.doc.path,
			"page", p.index+1,
			"error", err,
		)
		return ""
	}
	return text
}

// StructuredBlocks reconstructs blocks, lines, and spans from the
// page's positioned characters.
func (p *page) StructuredBlocks() []model.Block {
	pg := p.doc.reader.Page(p.index + 1)
	if pg.V.IsNull() {
		return nil
	}
	return buildBlocks(pg.Content().Text)
}

// RenderImage renders the page to a PNG at the given DPI via pdftoppm.
func (p *page) RenderImage(dpi int) ([]byte, error) {
	return renderPage(p.doc.path, p.index+1, dpi)
}

// metadataTitle reads the title from the trailer's Info dictionary.
// Malformed metadata never fails a document; it just has no title.
func metadataTitle(reader *pdflib.Reader) (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()

	info := reader.Trailer().Key("Info")
	if info.Kind() != pdflib.Dict {
		return ""
	}
	v := info.Key("Title")
	if v.Kind() != pdflib.String {
		return ""
	}
	return strings.TrimSpace(v.Text())
}
