package pdf

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

// TextOrganizer assembles glyphs into text lines. Glyphs sharing a baseline
// form a row; a row is cut into separate lines wherever the horizontal gap is
// wide enough to separate table columns.
type TextOrganizer struct {
	yTolerance float64 // Baseline tolerance for grouping glyphs into rows
	charMargin float64 // Gap (x font size) that ends a line
	wordMargin float64 // Gap (x font size) that inserts a space
}

// NewTextOrganizer creates a text organizer with default tolerances
func NewTextOrganizer(opts ...LayoutOption) *TextOrganizer {
	cfg := defaultLayoutConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newTextOrganizer(cfg)
}

func newTextOrganizer(cfg layoutConfig) *TextOrganizer {
	return &TextOrganizer{
		yTolerance: cfg.YTolerance,
		charMargin: cfg.CharMargin,
		wordMargin: cfg.WordMargin,
	}
}

// ExtractLines groups chars into text lines ordered top to bottom, then left
// to right. Each line's text ends with a line break.
func (to *TextOrganizer) ExtractLines(chars []CharObject) []layout.TextLine {
	if len(chars) == 0 {
		return nil
	}

	var lines []layout.TextLine
	for _, row := range to.groupIntoRows(to.sortCharacters(chars)) {
		for _, segment := range to.splitRow(row) {
			if line, ok := to.buildLine(segment); ok {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// sortCharacters orders characters by baseline, top first
func (to *TextOrganizer) sortCharacters(chars []CharObject) []CharObject {
	sorted := make([]CharObject, len(chars))
	copy(sorted, chars)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Baseline > sorted[j].Baseline
	})

	return sorted
}

// groupIntoRows groups baseline-sorted characters into rows and orders each
// row left to right
func (to *TextOrganizer) groupIntoRows(chars []CharObject) [][]CharObject {
	var rows [][]CharObject
	var current []CharObject
	currentY := chars[0].Baseline

	for _, char := range chars {
		if abs(char.Baseline-currentY) > to.yTolerance {
			rows = append(rows, current)
			current = nil
			currentY = char.Baseline
		}
		current = append(current, char)
	}
	rows = append(rows, current)

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].X0 < row[j].X0
		})
	}
	return rows
}

// splitRow cuts a row where the gap between neighbours exceeds the char
// margin
func (to *TextOrganizer) splitRow(row []CharObject) [][]CharObject {
	var segments [][]CharObject
	start := 0
	for i := 1; i < len(row); i++ {
		gap := row[i].X0 - row[i-1].X1
		if gap > to.charMargin*max(row[i].FontSize, row[i-1].FontSize) {
			segments = append(segments, row[start:i])
			start = i
		}
	}
	return append(segments, row[start:])
}

// buildLine turns one segment into a text line. Leading blanks are dropped so
// the line's x0 is the first visible glyph.
func (to *TextOrganizer) buildLine(segment []CharObject) (layout.TextLine, bool) {
	for len(segment) > 0 && segment[0].IsSpace() {
		segment = segment[1:]
	}
	if len(segment) == 0 {
		return layout.TextLine{}, false
	}

	var text strings.Builder
	glyphs := make([]layout.Node, 0, len(segment))
	box := layout.BoundingBox{
		X0: segment[0].X0,
		Y0: segment[0].Y0,
		X1: segment[0].X1,
		Y1: segment[0].Y1,
	}

	for i, char := range segment {
		if i > 0 {
			prev := segment[i-1]
			gap := char.X0 - prev.X1
			if gap > to.wordMargin*max(char.FontSize, prev.FontSize) && !prev.IsSpace() && !char.IsSpace() {
				text.WriteString(" ")
			}
		}
		text.WriteString(char.Text)

		box.X0 = min(box.X0, char.X0)
		box.Y0 = min(box.Y0, char.Y0)
		box.X1 = max(box.X1, char.X1)
		box.Y1 = max(box.Y1, char.Y1)

		glyphs = append(glyphs, layout.Glyph{
			Box:  layout.BoundingBox{X0: char.X0, Y0: char.Y0, X1: char.X1, Y1: char.Y1},
			Char: char.Text,
		})
	}
	text.WriteString("\n")

	return layout.TextLine{
		Box:     box,
		Content: norm.NFC.String(text.String()),
		Glyphs:  glyphs,
	}, true
}

// buildPage assembles the layout tree of one page
func buildPage(pageNumber int, box layout.BoundingBox, objects Objects, to *TextOrganizer) layout.Page {
	lines := to.ExtractLines(objects.Chars)

	items := make([]layout.Node, 0, len(lines)+len(objects.Rects))
	for _, line := range lines {
		items = append(items, line)
	}
	for _, r := range objects.Rects {
		items = append(items, layout.NewRect(
			layout.Point{X: r.X0, Y: r.Y0},
			layout.Point{X: r.X1, Y: r.Y1},
		))
	}

	return layout.Page{
		Number: pageNumber,
		Box:    box,
		Items:  items,
	}
}
