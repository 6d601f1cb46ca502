package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateHandler(t *testing.T) {
	t.Parallel()

	t.Run("short values pass through unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 32))

		logger.Info("processed", "document", "paper.pdf")

		if !strings.Contains(buf.String(), "document=paper.pdf") {
			t.Errorf("output = %s", buf.String())
		}
		if strings.Contains(buf.String(), Ellipsis) {
			t.Error("short value should not be truncated")
		}
	})

	t.Run("oversized values are cut with ellipsis", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 16))

		logger.Info("extracted", "text", strings.Repeat("x", 100))

		out := buf.String()
		if !strings.Contains(out, strings.Repeat("x", 16)+Ellipsis) {
			t.Errorf("output = %s", out)
		}
		if strings.Contains(out, strings.Repeat("x", 17)) {
			t.Errorf("value exceeds the cap: %s", out)
		}
	})

	t.Run("multibyte runes are never split", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 10))

		// Each rune is 3 bytes; 10 bytes lands mid-rune.
		logger.Info("extracted", "text", strings.Repeat("あ", 8))

		if !utf8.ValidString(buf.String()) {
			t.Errorf("output contains a split rune: %q", buf.String())
		}
	})

	t.Run("non-string values pass through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 4))

		logger.Info("processed", "headings", 123456789)

		if !strings.Contains(buf.String(), "headings=123456789") {
			t.Errorf("output = %s", buf.String())
		}
	})

	t.Run("group attributes are capped recursively", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 8))

		logger.Info("processed",
			slog.Group("page",
				slog.String("text", strings.Repeat("y", 50)),
				slog.Int("number", 3),
			),
		)

		out := buf.String()
		if !strings.Contains(out, strings.Repeat("y", 8)+Ellipsis) {
			t.Errorf("group value not capped: %s", out)
		}
		if !strings.Contains(out, "page.number=3") {
			t.Errorf("group int missing: %s", out)
		}
	})

	t.Run("WithAttrs caps persistent attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		base := NewTruncateHandler(slog.NewTextHandler(&buf, nil), 8)
		logger := slog.New(base).With("snippet", strings.Repeat("z", 40))

		logger.Info("hello")

		if !strings.Contains(buf.String(), strings.Repeat("z", 8)+Ellipsis) {
			t.Errorf("persistent attribute not capped: %s", buf.String())
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Info("hidden")
		logger.Warn("visible")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Error("info should be suppressed without verbose")
		}
		if !strings.Contains(out, "visible") {
			t.Error("warn should be logged")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Debug("details")

		if !strings.Contains(buf.String(), "details") {
			t.Error("debug should be logged in verbose mode")
		}
	})
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, true)

	logger.Debug("processed", "text", strings.Repeat("a", DefaultMaxValueLen+1))

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Errorf("output is not JSON: %s", out)
	}
	if !strings.Contains(out, Ellipsis) {
		t.Error("oversized value should be truncated")
	}
}
