package layout

import (
	"testing"
)

func textLine(text string, x0, y0 float64) TextLine {
	return TextLine{
		Box:     BoundingBox{X0: x0, Y0: y0, X1: x0 + 50, Y1: y0 + 10},
		Content: text,
	}
}

func TestFlattenBucketsByKind(t *testing.T) {
	line := textLine("Montag\n", 100, 700)
	line.Glyphs = []Node{
		Glyph{Box: BoundingBox{X0: 100, Y0: 700, X1: 105, Y1: 710}, Char: "M"},
		Glyph{Box: BoundingBox{X0: 105, Y0: 700, X1: 110, Y1: 710}, Char: "o"},
	}
	page := Page{
		Number: 1,
		Box:    BoundingBox{X1: 595, Y1: 842},
		Items: []Node{
			line,
			NewRect(Point{X: 20, Y: 650}, Point{X: 500, Y: 650.5}),
			textLine("Dienstag\n", 200, 700),
		},
	}

	objs := Flatten(page)

	testCases := []struct {
		kind Kind
		want int
	}{
		{KindPage, 1},
		{KindTextLine, 2},
		{KindRect, 1},
		{KindOther, 2},
	}
	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := len(objs[tc.kind]); got != tc.want {
				t.Errorf("Expected %d %s nodes, got %d", tc.want, tc.kind, got)
			}
		})
	}

	if objs.Count() != 6 {
		t.Errorf("Expected 6 nodes in total, got %d", objs.Count())
	}
}

func TestFlattenIsBreadthFirst(t *testing.T) {
	deep := textLine("deep\n", 0, 0)
	deep.Glyphs = []Node{Glyph{Char: "d"}}
	page := Page{
		Items: []Node{
			deep,
			Glyph{Char: "shallow"},
		},
	}

	others := Flatten(page)[KindOther]
	if len(others) != 2 {
		t.Fatalf("Expected 2 glyphs, got %d", len(others))
	}
	if got := others[0].(Glyph).Char; got != "shallow" {
		t.Errorf("Expected the shallower glyph first, got %q", got)
	}
}

func TestFlattenNil(t *testing.T) {
	if objs := Flatten(nil); objs.Count() != 0 {
		t.Errorf("Expected no nodes for nil root, got %d", objs.Count())
	}
}
