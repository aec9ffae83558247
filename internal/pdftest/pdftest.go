// Package pdftest writes small uncompressed PDF files for tests. Text is set
// in Helvetica with WinAnsi encoding and a fixed advance width, rules are
// filled rectangles.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// GlyphWidth is the advance of every glyph in thousandths of the font size
const GlyphWidth = 400

// Line is a run of text whose baseline starts at X, Y
type Line struct {
	Text string
	X, Y float64
}

// Rule is a filled rectangle
type Rule struct {
	X, Y, W, H float64
}

// Page holds the content of one page. A nil MediaBox inherits the
// document's box.
type Page struct {
	Lines    []Line
	Rules    []Rule
	MediaBox []float64
}

// Document describes a PDF whose page tree carries the shared MediaBox
type Document struct {
	MediaBox []float64
	FontSize float64
	Pages    []Page
}

// A4 is the portrait A4 media box in points
var A4 = []float64{0, 0, 595, 842}

// Bytes renders the document
func (d Document) Bytes() ([]byte, error) {
	w := &writer{}
	w.buf.WriteString("%PDF-1.4\n")

	fontSize := d.FontSize
	if fontSize == 0 {
		fontSize = 8
	}

	// 1 catalog, 2 page tree, 3 font, then a page and its content per page
	kids := make([]string, len(d.Pages))
	for i := range d.Pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	w.object("<< /Type /Catalog /Pages 2 0 R >>")

	tree := fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d", strings.Join(kids, " "), len(d.Pages))
	if d.MediaBox != nil {
		tree += " /MediaBox " + box(d.MediaBox)
	}
	w.object(tree + " >>")

	widths := make([]string, 256-32)
	for i := range widths {
		widths[i] = fmt.Sprint(GlyphWidth)
	}
	w.object(fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 255 /Widths [%s] >>",
		strings.Join(widths, " ")))

	for i, page := range d.Pages {
		dict := fmt.Sprintf("<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R", 5+2*i)
		if page.MediaBox != nil {
			dict += " /MediaBox " + box(page.MediaBox)
		}
		w.object(dict + " >>")

		content, err := page.content(fontSize)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		w.object(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	return w.finish(), nil
}

// MustBytes renders the document and panics on text WinAnsi cannot encode
func (d Document) MustBytes() []byte {
	data, err := d.Bytes()
	if err != nil {
		panic(err)
	}
	return data
}

func (p Page) content(fontSize float64) ([]byte, error) {
	var b bytes.Buffer
	enc := charmap.Windows1252.NewEncoder()

	for _, r := range p.Rules {
		fmt.Fprintf(&b, "%s %s %s %s re f\n", num(r.X), num(r.Y), num(r.W), num(r.H))
	}
	for _, l := range p.Lines {
		text, err := enc.String(l.Text)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", l.Text, err)
		}
		fmt.Fprintf(&b, "BT /F1 %s Tf %s %s Td (%s) Tj ET\n", num(fontSize), num(l.X), num(l.Y), escape(text))
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

type writer struct {
	buf     bytes.Buffer
	offsets []int
}

func (w *writer) object(body string) {
	w.offsets = append(w.offsets, w.buf.Len())
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", len(w.offsets), body)
}

func (w *writer) finish() []byte {
	xref := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n0000000000 65535 f \n", len(w.offsets)+1)
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(w.offsets)+1, xref)
	return w.buf.Bytes()
}

func box(b []float64) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = num(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// Column x positions of MenuPlan: categories, Monday, Tuesday
var Columns = []float64{30, 150, 330}

// MenuPlan is a two-day weekly plan on two A4 pages. The media box sits on
// the page tree only. The Tuesday gratin cell starts at the bottom of page 1
// and continues at the top of page 2.
func MenuPlan() Document {
	c := Columns
	rule := func(y float64) Rule { return Rule{X: 28, Y: y, W: 532, H: 0.4} }

	first := Page{
		Lines: []Line{
			{"Mensa Zentrum, 12. KW; 16.03. - 20.03.2015", 30, 810},
			{"Wochenkarte  ", 250, 795},
			{"Montag", c[1], 770},
			{"Dienstag", c[2], 770},

			{"Essen I", c[0], 740},
			{"Hauptkomponente", c[0], 728},
			{"Schweineschnitzel", c[1], 740},
			{"Stud.: 2,50 € Bed.: 3,70 €", c[1], 728},
			{"Putengeschnetzeltes", c[2], 740},
			{"Stud.: 2,60 € Bed.: 3,80 €", c[2], 728},
			{"3", c[2] + 100, 745},

			{"Gratin", c[0], 100},
			{"Kartoffelgratin", c[1], 100},
			{"Lasagne mit", c[2], 90},

			{"Bitte beachten Sie die separate Information zur Lebensmittelkennzeichnung", c[0], 40},
			{"1", 290, 20},
		},
		Rules: []Rule{
			rule(760),
			rule(700),
			{X: 140, Y: 765, W: 400, H: 0.4},
			{X: 28, Y: 80, W: 0.4, H: 700},
		},
	}

	second := Page{
		Lines: []Line{
			{"Stud.: 2,10 € Bed.: 3,30 €", c[1], 800},
			{"Hackfleischsauce", c[2], 800},
			{"Stud.: 3,35 € Bed.: 4,55 €", c[2], 788},
			{"je 100g Stud.: 0,70 € Bed.:  0,80 €", c[0], 740},
			{"2", 290, 20},
		},
		Rules: []Rule{
			rule(760),
		},
	}

	return Document{
		MediaBox: A4,
		FontSize: 8,
		Pages:    []Page{first, second},
	}
}
