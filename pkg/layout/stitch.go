package layout

import (
	"fmt"
	"log/slog"
)

// Placed pairs a decoder-owned node with its extended y coordinates in the
// document-wide space. The node itself is never modified.
type Placed struct {
	Node Node
	Page int // 0-based page index
	EY0  float64
	EY1  float64
}

// X0 returns the left edge of the node
func (p Placed) X0() float64 { return p.Node.BBox().X0 }

// X1 returns the right edge of the node
func (p Placed) X1() float64 { return p.Node.BBox().X1 }

// Text returns the node text, or "" for nodes without text
func (p Placed) Text() string {
	if t, ok := p.Node.(Texter); ok {
		return t.Text()
	}
	return ""
}

// Document is the merged, page-independent view of all pages
type Document map[Kind][]Placed

// TextLines returns all text lines in page order
func (d Document) TextLines() []Placed { return d[KindTextLine] }

// Rects returns all rectangles and line segments in page order
func (d Document) Rects() []Placed { return d[KindRect] }

// Stitcher merges pages one at a time. Page i is shifted down by the summed
// heights of pages 0..i-1, so later pages lie strictly below earlier ones.
type Stitcher struct {
	offset float64
	pages  int
	doc    Document
	logger *slog.Logger
}

// NewStitcher creates an empty stitcher. A nil logger discards output.
func NewStitcher(logger *slog.Logger) *Stitcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Stitcher{
		doc:    make(Document),
		logger: logger,
	}
}

// Add flattens the page tree rooted at root and appends its nodes to the
// merged document. The tree must contain exactly one page node.
func (s *Stitcher) Add(root Node) error {
	objs := Flatten(root)

	pages := objs[KindPage]
	if len(pages) != 1 {
		return fmt.Errorf("%w: page %d contains %d page nodes, want 1", ErrStructure, s.pages+1, len(pages))
	}
	height := pages[0].BBox().Height()

	for _, kind := range []Kind{KindPage, KindTextLine, KindRect, KindOther} {
		for _, node := range objs[kind] {
			box := node.BBox()
			s.doc[kind] = append(s.doc[kind], Placed{
				Node: node,
				Page: s.pages,
				EY0:  box.Y0 + s.offset,
				EY1:  box.Y1 + s.offset,
			})
		}
	}

	s.logger.Debug("stitched page",
		"page", s.pages+1,
		"offset", s.offset,
		"height", height,
		"textlines", len(objs[KindTextLine]),
		"rects", len(objs[KindRect]))

	s.offset -= height
	s.pages++
	return nil
}

// PageCount returns the number of pages added so far
func (s *Stitcher) PageCount() int {
	return s.pages
}

// Document returns the merged document
func (s *Stitcher) Document() Document {
	return s.doc
}

// Stitch merges the given page trees in order
func Stitch(pages []Node) (Document, error) {
	s := NewStitcher(nil)
	for _, page := range pages {
		if err := s.Add(page); err != nil {
			return nil, err
		}
	}
	return s.Document(), nil
}
