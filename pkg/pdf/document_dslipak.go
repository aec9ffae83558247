package pdf

import (
	"fmt"
	"io"

	gopdf "github.com/dslipak/pdf"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

// DslipakDocument implements the Document interface using dslipak/pdf library
type DslipakDocument struct {
	reader    *gopdf.Reader
	info      documentInfo
	organizer *TextOrganizer
	config    layoutConfig
}

// OpenWithDslipak decodes a PDF using the dslipak/pdf library
func OpenWithDslipak(r io.ReaderAt, size int64, opts ...LayoutOption) (Document, error) {
	reader, err := gopdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	cfg := defaultLayoutConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := &DslipakDocument{
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
func (d *DslipakDocument) GetMetadata() Metadata {
	return d.info.metadata
}

// GetPage returns a specific page by index (0-based)
func (d *DslipakDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= d.reader.NumPage() {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, d.reader.NumPage())
	}
	return NewDslipakPage(d.reader, index+1, boxOrDefault(d.info.boxes, index+1), d.organizer, d.config)
}

// PageCount returns the total number of pages
func (d *DslipakDocument) PageCount() int {
	return d.reader.NumPage()
}

// Close releases resources associated with the document
func (d *DslipakDocument) Close() error {
	d.reader = nil
	return nil
}

// DslipakPage implements the Page interface using dslipak/pdf
type DslipakPage struct {
	pageNumber int
	page       gopdf.Page
	bbox       layout.BoundingBox
	objects    Objects
	organizer  *TextOrganizer
}

// NewDslipakPage decodes page pageNumber (1-based). A zero box is replaced
// by the MediaBox the page declares or inherits.
func NewDslipakPage(reader *gopdf.Reader, pageNumber int, box layout.BoundingBox, organizer *TextOrganizer, cfg layoutConfig) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", pageNumber)
	}

	if box.Width() <= 0 || box.Height() <= 0 {
		box = letterBox
		if mediaBox, ok := dslipakMediaBox(page.V); ok {
			box = mediaBox
		}
	}

	p := &DslipakPage{
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

// dslipakMediaBox returns the MediaBox of a page, inherited from the
// nearest ancestor in the page tree that defines one
func dslipakMediaBox(page gopdf.Value) (layout.BoundingBox, bool) {
	v := page
	for depth := 0; depth < maxTreeDepth && !v.IsNull(); depth++ {
		mediaBox := v.Key("MediaBox")
		if mediaBox.Kind() == gopdf.Array && mediaBox.Len() == 4 {
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
func (p *DslipakPage) extractObjects(cfg layoutConfig) (err error) {
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
func (p *DslipakPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *DslipakPage) GetWidth() float64 {
	return p.bbox.Width()
}

// GetHeight returns the page height
func (p *DslipakPage) GetHeight() float64 {
	return p.bbox.Height()
}

// GetBBox returns the page bounding box
func (p *DslipakPage) GetBBox() layout.BoundingBox {
	return p.bbox
}

// GetObjects returns all objects on the page
func (p *DslipakPage) GetObjects() Objects {
	return p.objects
}

// GetLayout returns the page's layout tree
func (p *DslipakPage) GetLayout() layout.Node {
	return buildPage(p.pageNumber, p.bbox, p.objects, p.organizer)
}
