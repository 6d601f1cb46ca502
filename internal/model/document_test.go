package model

import "testing"

// TestLineText tests span concatenation and trimming.
func TestLineText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line Line
		want string
	}{
		{
			name: "concatenates spans",
			line: Line{Spans: []Span{{Text: "Chapter "}, {Text: "1"}}},
			want: "Chapter 1",
		},
		{
			name: "trims surrounding whitespace",
			line: Line{Spans: []Span{{Text: "  Introduction  "}}},
			want: "Introduction",
		},
		{
			name: "no spans",
			line: Line{},
			want: "",
		},
		{
			name: "inner whitespace preserved",
			line: Line{Spans: []Span{{Text: " 1. "}, {Text: " Overview "}}},
			want: "1.  Overview",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.line.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestLineStyle tests the style summary derived from spans.
func TestLineStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line Line
		want Style
	}{
		{
			name: "max size across spans",
			line: Line{Spans: []Span{
				{Text: "a", FontSize: 10, Font: "Helvetica"},
				{Text: "b", FontSize: 18, Font: "Helvetica"},
				{Text: "c", FontSize: 12, Font: "Helvetica"},
			}},
			want: Style{MaxFontSize: 18},
		},
		{
			name: "bold from any span font name",
			line: Line{Spans: []Span{
				{Text: "a", FontSize: 10, Font: "Times-Roman"},
				{Text: "b", FontSize: 10, Font: "Times-Bold"},
			}},
			want: Style{MaxFontSize: 10, Bold: true},
		},
		{
			name: "bold substring inside compound name",
			line: Line{Spans: []Span{{Text: "a", FontSize: 11, Font: "Arial-BoldItalicMT"}}},
			want: Style{MaxFontSize: 11, Bold: true},
		},
		{
			name: "lowercase bold does not count",
			line: Line{Spans: []Span{{Text: "a", FontSize: 11, Font: "semibold-ish"}}},
			want: Style{MaxFontSize: 11},
		},
		{
			name: "empty line",
			line: Line{},
			want: Style{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.line.Style(); got != tt.want {
				t.Errorf("Style() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
