package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotInstalled is returned by NewTesseract when the tesseract binary
// is not on PATH.
var ErrNotInstalled = errors.New("tesseract not found: install tesseract-ocr")

// Tesseract recognizes page images with the tesseract command line tool.
// It is stateless and safe for concurrent use.
type Tesseract struct {
	// binary is the resolved tesseract executable path.
	binary string

	// language is the tesseract language model, e.g. "eng".
	language string
}

// TesseractOption configures a Tesseract recognizer.
type TesseractOption func(*Tesseract)

// WithLanguage sets the tesseract language model. The default is "eng".
func WithLanguage(lang string) TesseractOption {
	return func(t *Tesseract) {
		t.language = lang
	}
}

// NewTesseract creates a Tesseract recognizer, verifying up front that
// the binary exists so a misconfigured host fails at startup rather than
// once per page.
func NewTesseract(opts ...TesseractOption) (*Tesseract, error) {
	binary, err := exec.LookPath("tesseract")
	if err != nil {
		return nil, ErrNotInstalled
	}

	t := &Tesseract{
		binary:   binary,
		language: "eng",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Recognize runs tesseract over the image, reading it from stdin and
// writing recognized text to stdout. The context bounds the run; a
// cancelled or expired context kills the process.
func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, error) {
	cmd := exec.CommandContext(ctx, t.binary, "stdin", "stdout", "-l", t.language) //nolint:gosec // Binary path resolved via LookPath
	cmd.Stdin = bytes.NewReader(image)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("tesseract: %w", ctxErr)
		}
		return "", fmt.Errorf("tesseract: %w (%s)", err, bytes.TrimSpace(stderr.Bytes()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
