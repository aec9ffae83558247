// Package layout models positioned page content as a tree of layout nodes and
// merges the pages of a document into one document-wide coordinate space.
package layout

import "fmt"

// Kind tags the concrete type of a layout node
type Kind int

const (
	KindOther Kind = iota
	KindPage
	KindTextLine
	KindRect
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindTextLine:
		return "textline"
	case KindRect:
		return "rect"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// BoundingBox is an axis-aligned box in page-local coordinates with the
// origin at the bottom-left corner of the page.
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Bottom
	X1 float64 // Right
	Y1 float64 // Top
}

// Width returns the width of the bounding box
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Node is a positioned element of a page's layout tree. Leaves report an
// empty child list.
type Node interface {
	// Kind returns the concrete node kind
	Kind() Kind

	// BBox returns the node's bounding box
	BBox() BoundingBox

	// Children returns the direct descendants of the node
	Children() []Node
}

// Texter is implemented by nodes carrying extractable text
type Texter interface {
	Text() string
}

// Segment is implemented by nodes carrying two endpoints
type Segment interface {
	Endpoints() (Point, Point)
}

// Page is the root node of one page
type Page struct {
	Number int
	Box    BoundingBox
	Items  []Node
}

// Kind returns KindPage
func (p Page) Kind() Kind { return KindPage }

// BBox returns the page box
func (p Page) BBox() BoundingBox { return p.Box }

// Children returns the page items
func (p Page) Children() []Node { return p.Items }

// TextLine is one horizontal run of text. Content keeps the trailing line
// break produced by extraction.
type TextLine struct {
	Box     BoundingBox
	Content string
	Glyphs  []Node
}

// Kind returns KindTextLine
func (t TextLine) Kind() Kind { return KindTextLine }

// BBox returns the line box
func (t TextLine) BBox() BoundingBox { return t.Box }

// Children returns the glyphs of the line
func (t TextLine) Children() []Node { return t.Glyphs }

// Text returns the line content
func (t TextLine) Text() string { return t.Content }

// Glyph is a single positioned character
type Glyph struct {
	Box  BoundingBox
	Char string
}

func (g Glyph) Kind() Kind        { return KindOther }
func (g Glyph) BBox() BoundingBox { return g.Box }
func (g Glyph) Children() []Node  { return nil }
func (g Glyph) Text() string      { return g.Char }

// Rect is a rectangle or straight line segment
type Rect struct {
	Box      BoundingBox
	From, To Point
}

// Kind returns KindRect
func (r Rect) Kind() Kind { return KindRect }

// BBox returns the rectangle box
func (r Rect) BBox() BoundingBox { return r.Box }

// Children returns nil, rectangles are leaves
func (r Rect) Children() []Node { return nil }

// Endpoints returns the two corner points the rectangle was drawn from
func (r Rect) Endpoints() (Point, Point) { return r.From, r.To }

// NewRect builds a Rect from two corners in any order
func NewRect(a, b Point) Rect {
	return Rect{
		Box: BoundingBox{
			X0: min(a.X, b.X),
			Y0: min(a.Y, b.Y),
			X1: max(a.X, b.X),
			Y1: max(a.Y, b.Y),
		},
		From: a,
		To:   b,
	}
}
