package pdf

import (
	"bytes"
	"strings"
	"testing"

	gopdf "github.com/dslipak/pdf"
	lpdf "github.com/ledongthuc/pdf"

	"github.com/pyhub-apps/mensa2json/internal/pdftest"
	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

var engines = []Engine{EngineLedongthuc, EngineDslipak}

func openPlan(t *testing.T, engine Engine) Document {
	t.Helper()
	data := pdftest.MenuPlan().MustBytes()
	doc, err := OpenWithEngine(engine, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	return doc
}

// lines returns the text lines of a page keyed by their content
func lines(page Page) map[string]layout.TextLine {
	found := make(map[string]layout.TextLine)
	for _, node := range layout.Flatten(page.GetLayout())[layout.KindTextLine] {
		line := node.(layout.TextLine)
		found[line.Content] = line
	}
	return found
}

func TestOpenPlan(t *testing.T) {
	for _, engine := range engines {
		t.Run(string(engine), func(t *testing.T) {
			doc := openPlan(t, engine)
			defer doc.Close()

			if doc.PageCount() != 2 {
				t.Fatalf("Expected 2 pages, got %d", doc.PageCount())
			}
			if got := doc.GetMetadata().PageCount; got != 2 {
				t.Errorf("Expected metadata page count 2, got %d", got)
			}

			page, err := doc.GetPage(0)
			if err != nil {
				t.Fatalf("Failed to get page: %v", err)
			}
			if page.GetPageNumber() != 1 {
				t.Errorf("Expected page number 1, got %d", page.GetPageNumber())
			}
			if page.GetWidth() != 595 || page.GetHeight() != 842 {
				t.Errorf("Expected the inherited A4 box, got %.2f x %.2f", page.GetWidth(), page.GetHeight())
			}

			objects := page.GetObjects()
			t.Logf("Page 1: %d chars, %d rects", len(objects.Chars), len(objects.Rects))
			if len(objects.Rects) != 4 {
				t.Errorf("Expected 4 rectangles, got %d", len(objects.Rects))
			}
			if len(objects.Chars) == 0 {
				t.Fatal("Expected to find character objects")
			}
			if c := objects.Chars[0]; c.FontSize != 8 || c.Width != 3.2 {
				t.Errorf("Unexpected glyph metrics: size %.2f width %.2f", c.FontSize, c.Width)
			}
		})
	}
}

func TestPlanLayout(t *testing.T) {
	for _, engine := range engines {
		t.Run(string(engine), func(t *testing.T) {
			doc := openPlan(t, engine)
			defer doc.Close()

			page, err := doc.GetPage(0)
			if err != nil {
				t.Fatalf("Failed to get page: %v", err)
			}
			found := lines(page)

			testCases := []struct {
				text string
				x0   float64
			}{
				{"Montag\n", 150},
				{"Dienstag\n", 330},
				{"Essen I\n", 30},
				{"Stud.: 2,50 € Bed.: 3,70 €\n", 150},
				{"Wochenkarte  \n", 250},
				{"Lasagne mit\n", 330},
			}
			for _, tc := range testCases {
				line, ok := found[tc.text]
				if !ok {
					t.Errorf("Expected line %q", tc.text)
					continue
				}
				if line.Box.X0 != tc.x0 {
					t.Errorf("%q: expected x0 %.2f, got %.2f", tc.text, tc.x0, line.Box.X0)
				}
			}
			if t.Failed() {
				for text := range found {
					t.Logf("line %q", text)
				}
			}

			rects := layout.Flatten(page.GetLayout())[layout.KindRect]
			if len(rects) != 4 {
				t.Fatalf("Expected 4 rect nodes, got %d", len(rects))
			}
			if b := rects[0].BBox(); b.X0 != 28 || b.Y0 != 760 || b.X1 != 560 {
				t.Errorf("Unexpected first rule %+v", b)
			}
		})
	}
}

func TestPageBoxInheritedWithoutPdfcpu(t *testing.T) {
	plan := pdftest.MenuPlan()
	plan.Pages[1].MediaBox = []float64{0, 0, 842, 595}
	data := plan.MustBytes()
	cfg := defaultLayoutConfig()

	t.Run("ledongthuc", func(t *testing.T) {
		reader, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			t.Fatal(err)
		}
		first, err := NewLedongthucPage(reader, 1, layout.BoundingBox{}, newTextOrganizer(cfg), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if first.GetHeight() != 842 {
			t.Errorf("Expected the page tree's box, got height %.2f", first.GetHeight())
		}
		second, err := NewLedongthucPage(reader, 2, layout.BoundingBox{}, newTextOrganizer(cfg), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if second.GetWidth() != 842 || second.GetHeight() != 595 {
			t.Errorf("Expected the page's own box, got %.2f x %.2f", second.GetWidth(), second.GetHeight())
		}
	})

	t.Run("dslipak", func(t *testing.T) {
		reader, err := gopdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			t.Fatal(err)
		}
		first, err := NewDslipakPage(reader, 1, layout.BoundingBox{}, newTextOrganizer(cfg), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if first.GetHeight() != 842 {
			t.Errorf("Expected the page tree's box, got height %.2f", first.GetHeight())
		}
		second, err := NewDslipakPage(reader, 2, layout.BoundingBox{}, newTextOrganizer(cfg), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if second.GetWidth() != 842 || second.GetHeight() != 595 {
			t.Errorf("Expected the page's own box, got %.2f x %.2f", second.GetWidth(), second.GetHeight())
		}
	})
}

func TestPageBoxDefaultsToLetter(t *testing.T) {
	plan := pdftest.MenuPlan()
	plan.MediaBox = nil
	data := plan.MustBytes()
	cfg := defaultLayoutConfig()

	reader, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	page, err := NewLedongthucPage(reader, 1, layout.BoundingBox{}, newTextOrganizer(cfg), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if page.GetBBox() != letterBox {
		t.Errorf("Expected letter box, got %+v", page.GetBBox())
	}
}

func TestGetPageOutOfRange(t *testing.T) {
	doc := openPlan(t, EngineAuto)
	defer doc.Close()

	if _, err := doc.GetPage(doc.PageCount()); err == nil {
		t.Error("Expected an error for an out-of-range page index")
	}
	if _, err := doc.GetPage(-1); err == nil {
		t.Error("Expected an error for a negative page index")
	}
}

func TestOpenAutoPrefersLedongthuc(t *testing.T) {
	doc := openPlan(t, EngineAuto)
	defer doc.Close()

	if _, ok := doc.(*LedongthucDocument); !ok {
		t.Errorf("Expected the ledongthuc backend, got %T", doc)
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	data := []byte("this is not a PDF document")
	_, err := Open(bytes.NewReader(data), int64(len(data)))
	if err == nil {
		t.Fatal("Expected an error for non-PDF input")
	}
	if !strings.Contains(err.Error(), "ledongthuc") || !strings.Contains(err.Error(), "dslipak") {
		t.Errorf("Expected both backend errors, got %v", err)
	}
}

func TestOpenWithUnknownEngine(t *testing.T) {
	data := []byte("%PDF-1.4")
	_, err := OpenWithEngine(Engine("mupdf"), bytes.NewReader(data), int64(len(data)))
	if err == nil || !strings.Contains(err.Error(), "unknown engine") {
		t.Errorf("Expected unknown engine error, got %v", err)
	}
}

func BenchmarkOpenPlan(b *testing.B) {
	data := pdftest.MenuPlan().MustBytes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc, err := Open(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			b.Fatal(err)
		}
		for p := 0; p < doc.PageCount(); p++ {
			page, err := doc.GetPage(p)
			if err != nil {
				b.Fatal(err)
			}
			page.GetLayout()
		}
		doc.Close()
	}
}
