package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

// Open decodes a PDF, trying the ledongthuc backend first and falling back to
// dslipak
func Open(r io.ReaderAt, size int64, opts ...LayoutOption) (Document, error) {
	return OpenWithEngine(EngineAuto, r, size, opts...)
}

// OpenFile reads the file at path and decodes it
func OpenFile(path string, opts ...LayoutOption) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Open(bytes.NewReader(data), int64(len(data)), opts...)
}

// OpenWithEngine decodes a PDF with the given backend
func OpenWithEngine(engine Engine, r io.ReaderAt, size int64, opts ...LayoutOption) (Document, error) {
	switch engine {
	case EngineLedongthuc:
		return OpenWithLedongthuc(r, size, opts...)
	case EngineDslipak:
		return OpenWithDslipak(r, size, opts...)
	case EngineAuto, "":
		doc, err := OpenWithLedongthuc(r, size, opts...)
		if err == nil {
			return doc, nil
		}
		doc, fallbackErr := OpenWithDslipak(r, size, opts...)
		if fallbackErr == nil {
			return doc, nil
		}
		return nil, errors.Join(err, fallbackErr)
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}

// documentInfo holds what pdfcpu resolves for the whole file: page boxes
// with inherited MediaBox entries and the info dictionary
type documentInfo struct {
	boxes    []layout.BoundingBox
	metadata Metadata
}

// readDocumentInfo reads page boxes and metadata with pdfcpu. Relaxed
// validation keeps slightly malformed producer output readable.
func readDocumentInfo(r io.ReaderAt, size int64) (documentInfo, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(io.NewSectionReader(r, 0, size), conf)
	if err != nil {
		return documentInfo{}, fmt.Errorf("failed to read PDF context: %w", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		return documentInfo{}, fmt.Errorf("invalid PDF: %w", err)
	}

	info := documentInfo{
		boxes: make([]layout.BoundingBox, ctx.PageCount),
		metadata: Metadata{
			Title:     ctx.Title,
			Author:    ctx.Author,
			Creator:   ctx.Creator,
			Producer:  ctx.Producer,
			PageCount: ctx.PageCount,
		},
	}

	for i := 1; i <= ctx.PageCount; i++ {
		_, _, attrs, err := ctx.PageDict(i, false)
		if err != nil {
			return documentInfo{}, fmt.Errorf("failed to get page dict %d: %w", i, err)
		}
		if attrs == nil || attrs.MediaBox == nil {
			continue
		}
		mb := attrs.MediaBox
		info.boxes[i-1] = layout.BoundingBox{
			X0: mb.LL.X,
			Y0: mb.LL.Y,
			X1: mb.UR.X,
			Y1: mb.UR.Y,
		}
	}

	return info, nil
}
