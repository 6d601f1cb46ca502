package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueLen is the default cap on string attribute values.
const DefaultMaxValueLen = 512

// Ellipsis marks a truncated value.
const Ellipsis = "..."

// TruncateHandler wraps an slog.Handler to cap oversized string values.
// It intercepts log records and truncates string attributes longer than
// the configured maximum before passing them to the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Truncation applies to every log site without per-call discipline
type TruncateHandler struct {
	// handler is the underlying slog handler that receives capped records.
	handler slog.Handler

	// maxLen is the maximum length of a string attribute value in bytes.
	maxLen int
}

// NewTruncateHandler creates a new TruncateHandler wrapping the given handler.
// String attributes longer than maxLen bytes are cut and suffixed with an
// ellipsis before being passed to the underlying handler.
// If handler is nil, the returned TruncateHandler will use slog.Default().Handler().
// If maxLen is not positive, DefaultMaxValueLen is used.
func NewTruncateHandler(handler slog.Handler, maxLen int) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	return &TruncateHandler{handler: handler, maxLen: maxLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle caps the record's attributes and passes it to the underlying handler.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	capped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		capped.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, capped)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are capped before being added.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cappedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		cappedAttrs[i] = h.truncateAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(cappedAttrs), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// truncateAttr caps a single attribute, recursively handling groups.
func (h *TruncateHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		cappedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			cappedAttrs[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(cappedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()
		if len(strVal) > h.maxLen {
			return slog.String(a.Key, truncate(strVal, h.maxLen)+Ellipsis)
		}
	}

	return a
}

// truncate cuts s to at most maxLen bytes without splitting a UTF-8
// sequence.
func truncate(s string, maxLen int) string {
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// NewLogger creates a new slog.Logger with value truncation.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	truncateHandler := NewTruncateHandler(textHandler, DefaultMaxValueLen)

	return slog.New(truncateHandler)
}

// NewJSONLogger creates a new slog.Logger with value truncation that
// outputs JSON format. Useful for structured log aggregation.
//
// Parameters:
//   - w: The io.Writer to write log output to
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger configured for JSON output with truncation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(w, opts)
	truncateHandler := NewTruncateHandler(jsonHandler, DefaultMaxValueLen)

	return slog.New(truncateHandler)
}
