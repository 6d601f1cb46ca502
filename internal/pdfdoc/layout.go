package pdfdoc

import (
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/nao1215/pdftoc/internal/model"
)

// Layout reconstruction constants.
//
// The PDF content stream yields individually positioned characters, not
// lines. Characters whose baselines differ by no more than rowTolerance
// points belong to the same line; a vertical gap larger than
// blockGapFactor times the previous line's dominant font size starts a
// new block. A horizontal gap wider than wordGapFactor times the font
// size inserts a space, since many producers omit explicit space glyphs.
const (
	rowTolerance   = 2.0
	blockGapFactor = 1.8
	wordGapFactor  = 0.25
)

// buildBlocks reconstructs blocks, lines, and spans from positioned
// characters, in top-to-bottom then left-to-right order. PDF origin is
// the bottom-left corner, so larger Y means higher on the page.
func buildBlocks(texts []pdflib.Text) []model.Block {
	chars := filterChars(texts)
	if len(chars) == 0 {
		return nil
	}

	sort.SliceStable(chars, func(i, j int) bool {
		if chars[i].Y != chars[j].Y {
			return chars[i].Y > chars[j].Y
		}
		return chars[i].X < chars[j].X
	})

	rows := groupRows(chars)

	var blocks []model.Block
	var current []model.Line
	prevY := rows[0].y
	prevSize := rows[0].maxFontSize()

	for i, row := range rows {
		if i > 0 {
			gap := prevY - row.y
			if gap > blockGapFactor*max(prevSize, 10) {
				blocks = append(blocks, model.Block{Lines: current})
				current = nil
			}
		}
		current = append(current, row.toLine())
		prevY = row.y
		prevSize = row.maxFontSize()
	}
	if len(current) > 0 {
		blocks = append(blocks, model.Block{Lines: current})
	}

	return blocks
}

// filterChars drops fragments with no visible content.
func filterChars(texts []pdflib.Text) []pdflib.Text {
	out := make([]pdflib.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// row is one reconstructed line of characters sharing a baseline.
type row struct {
	y     float64
	chars []pdflib.Text
}

// groupRows splits Y-sorted characters into baseline rows.
func groupRows(chars []pdflib.Text) []row {
	var rows []row
	current := row{y: chars[0].Y}

	for _, c := range chars {
		if len(current.chars) > 0 && current.y-c.Y > rowTolerance {
			rows = append(rows, current)
			current = row{y: c.Y}
		}
		current.chars = append(current.chars, c)
	}
	rows = append(rows, current)

	// Characters inside a row must read left to right regardless of
	// content stream order.
	for i := range rows {
		sort.SliceStable(rows[i].chars, func(a, b int) bool {
			return rows[i].chars[a].X < rows[i].chars[b].X
		})
	}

	return rows
}

// maxFontSize returns the largest font size in the row.
func (r row) maxFontSize() float64 {
	var m float64
	for _, c := range r.chars {
		if c.FontSize > m {
			m = c.FontSize
		}
	}
	return m
}

// toLine merges the row's characters into spans. Consecutive characters
// with the same font name and size share a span; a wide horizontal gap
// between characters becomes a space.
func (r row) toLine() model.Line {
	var spans []model.Span
	var sb strings.Builder
	var cur pdflib.Text
	started := false

	flush := func() {
		if sb.Len() == 0 {
			return
		}
		spans = append(spans, model.Span{
			Text:     sb.String(),
			FontSize: cur.FontSize,
			Font:     cur.Font,
		})
		sb.Reset()
	}

	for _, c := range r.chars {
		if started {
			if c.Font != cur.Font || c.FontSize != cur.FontSize {
				flush()
			} else if gap := c.X - (cur.X + cur.W); gap > wordGapFactor*max(cur.FontSize, 1) {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(c.S)
		cur = c
		started = true
	}
	flush()

	return model.Line{Spans: spans}
}
