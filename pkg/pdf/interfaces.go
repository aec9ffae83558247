package pdf

import (
	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

// Document represents a decoded PDF document
type Document interface {
	// GetMetadata returns the PDF metadata
	GetMetadata() Metadata

	// GetPage returns a specific page by index (0-based)
	GetPage(index int) (Page, error)

	// PageCount returns the total number of pages
	PageCount() int

	// Close releases resources associated with the document
	Close() error
}

// Page represents a single decoded page
type Page interface {
	// GetPageNumber returns the page number (1-based)
	GetPageNumber() int

	// GetWidth returns the page width
	GetWidth() float64

	// GetHeight returns the page height
	GetHeight() float64

	// GetBBox returns the page bounding box
	GetBBox() layout.BoundingBox

	// GetObjects returns the raw glyphs and rectangles of the page
	GetObjects() Objects

	// GetLayout returns the page's layout tree: a page node holding text
	// lines (with their glyphs) and rectangles
	GetLayout() layout.Node
}
