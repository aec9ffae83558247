package pdf

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	reader    *lpdf.Reader
	info      documentInfo
	organizer *TextOrganizer
	config    layoutConfig
}

// OpenWithLedongthuc decodes a PDF using the ledongthuc/pdf library
func OpenWithLedongthuc(r io.ReaderAt, size int64, opts ...LayoutOption) (Document, error) {
	reader, err := lpdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	cfg := defaultLayoutConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := &LedongthucDocument{
		reader:    reader,
		organizer: newTextOrganizer(cfg),
		config:    cfg,
	}

	// pdfcpu is stricter than the decoder; without it the page's own
	// MediaBox entry is used
	if info, err := readDocumentInfo(r, size); err == nil {
		doc.info = info
	}
	if doc.info.metadata.PageCount == 0 {
		doc.info.metadata.PageCount = reader.NumPage()
	}

	return doc, nil
}

// GetMetadata returns the PDF metadata
func (d *LedongthucDocument) GetMetadata() Metadata {
	return d.info.metadata
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= d.reader.NumPage() {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, d.reader.NumPage())
	}
	return NewLedongthucPage(d.reader, index+1, boxOrDefault(d.info.boxes, index+1), d.organizer, d.config)
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return d.reader.NumPage()
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	d.reader = nil
	return nil
}

// LedongthucPage implements the Page interface using ledongthuc/pdf
type LedongthucPage struct {
	pageNumber int
	page       lpdf.Page
	bbox       layout.BoundingBox
	objects    Objects
	organizer  *TextOrganizer
}

// NewLedongthucPage decodes page pageNumber (1-based). A zero box is replaced
// by the MediaBox the page declares or inherits.
func NewLedongthucPage(reader *lpdf.Reader, pageNumber int, box layout.BoundingBox, organizer *TextOrganizer, cfg layoutConfig) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", pageNumber)
	}

	if box.Width() <= 0 || box.Height() <= 0 {
		box = letterBox
		if mediaBox, ok := ledongthucMediaBox(page.V); ok {
			box = mediaBox
		}
	}

	p := &LedongthucPage{
		pageNumber: pageNumber,
		page:       page,
		bbox:       box,
		organizer:  organizer,
	}

	if err := p.extractObjects(cfg); err != nil {
		return nil, fmt.Errorf("failed to extract objects: %w", err)
	}

	return p, nil
}

// ledongthucMediaBox returns the MediaBox of a page, inherited from the
// nearest ancestor in the page tree that defines one
func ledongthucMediaBox(page lpdf.Value) (layout.BoundingBox, bool) {
	v := page
	for depth := 0; depth < maxTreeDepth && !v.IsNull(); depth++ {
		mediaBox := v.Key("MediaBox")
		if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
			box := layout.BoundingBox{
				X0: mediaBox.Index(0).Float64(),
				Y0: mediaBox.Index(1).Float64(),
				X1: mediaBox.Index(2).Float64(),
				Y1: mediaBox.Index(3).Float64(),
			}
			return box, box.Width() > 0 && box.Height() > 0
		}
		v = v.Key("Parent")
	}
	return layout.BoundingBox{}, false
}

// extractObjects collects glyphs and rectangles from the page content. The
// decoder panics on malformed content streams.
func (p *LedongthucPage) extractObjects(cfg layoutConfig) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content on page %d: %v", p.pageNumber, r)
		}
	}()

	content := p.page.Content()

	p.objects = Objects{
		Chars: make([]CharObject, 0, len(content.Text)),
		Rects: make([]RectObject, 0, len(content.Rect)),
	}
	for _, text := range content.Text {
		p.objects.Chars = append(p.objects.Chars,
			charFromRun(text.S, text.Font, text.FontSize, text.X, text.Y, text.W, cfg))
	}
	for _, rect := range content.Rect {
		p.objects.Rects = append(p.objects.Rects,
			rectFromCorners(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y))
	}

	return nil
}

// GetPageNumber returns the page number (1-based)
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *LedongthucPage) GetWidth() float64 {
	return p.bbox.Width()
}

// GetHeight returns the page height
func (p *LedongthucPage) GetHeight() float64 {
	return p.bbox.Height()
}

// GetBBox returns the page bounding box
func (p *LedongthucPage) GetBBox() layout.BoundingBox {
	return p.bbox
}

// GetObjects returns all objects on the page
func (p *LedongthucPage) GetObjects() Objects {
	return p.objects
}

// GetLayout returns the page's layout tree
func (p *LedongthucPage) GetLayout() layout.Node {
	return buildPage(p.pageNumber, p.bbox, p.objects, p.organizer)
}
