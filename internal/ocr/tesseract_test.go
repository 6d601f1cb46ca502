package ocr

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestNewTesseract(t *testing.T) {
	t.Parallel()

	binary, lookErr := exec.LookPath("tesseract")

	t.Run("reports missing binary", func(t *testing.T) {
		t.Parallel()
		if lookErr == nil {
			t.Skip("tesseract is installed")
		}

		_, err := NewTesseract()
		if !errors.Is(err, ErrNotInstalled) {
			t.Errorf("NewTesseract() error = %v, want ErrNotInstalled", err)
		}
	})

	t.Run("resolves binary and applies options", func(t *testing.T) {
		t.Parallel()
		if lookErr != nil {
			t.Skip("tesseract is not installed")
		}

		rec, err := NewTesseract(WithLanguage("deu"))
		if err != nil {
			t.Fatalf("NewTesseract() error = %v", err)
		}
		if rec.binary != binary {
			t.Errorf("binary = %q, want %q", rec.binary, binary)
		}
		if rec.language != "deu" {
			t.Errorf("language = %q, want %q", rec.language, "deu")
		}
	})

	t.Run("defaults to english", func(t *testing.T) {
		t.Parallel()
		if lookErr != nil {
			t.Skip("tesseract is not installed")
		}

		rec, err := NewTesseract()
		if err != nil {
			t.Fatalf("NewTesseract() error = %v", err)
		}
		if rec.language != "eng" {
			t.Errorf("language = %q, want %q", rec.language, "eng")
		}
	})
}

func TestTesseractRecognize(t *testing.T) {
	t.Parallel()

	t.Run("cancelled context is reported as the cause", func(t *testing.T) {
		t.Parallel()

		// A fake binary keeps the test independent of a tesseract
		// installation; the process never starts.
		rec := &Tesseract{binary: "/bin/cat", language: "eng"}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := rec.Recognize(ctx, []byte("not an image"))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Recognize() error = %v, want context.Canceled", err)
		}
	})

	t.Run("invalid image fails with process error", func(t *testing.T) {
		t.Parallel()
		if _, err := exec.LookPath("tesseract"); err != nil {
			t.Skip("tesseract is not installed")
		}

		rec, err := NewTesseract()
		if err != nil {
			t.Fatalf("NewTesseract() error = %v", err)
		}

		if _, err := rec.Recognize(context.Background(), []byte("not an image")); err == nil {
			t.Error("Recognize() should fail for a non-image payload")
		}
	})
}
