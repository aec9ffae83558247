// Package menu reconstructs the weekly menu table from the positioned text
// and rules of a stitched document and turns it into day records.
package menu

import (
	"fmt"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
	"github.com/pyhub-apps/mensa2json/pkg/pdf"
)

// Converter turns decoded menu plans into day records. A Converter holds
// only configuration and may be reused.
type Converter struct {
	cfg    config
	filter *TextFilter
}

// NewConverter creates a converter with default settings
func NewConverter(opts ...Option) *Converter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Converter{
		cfg:    cfg,
		filter: NewTextFilter(cfg.IgnorePrefixes),
	}
}

// Analysis holds the intermediate structures of one conversion
type Analysis struct {
	Table    Table
	Dividers []float64
	Grid     Grid
	Week     CalendarWeek
}

// Convert pulls the pages of doc in order and converts them
func (c *Converter) Convert(doc pdf.Document) ([]Day, error) {
	stitched, err := c.Stitch(doc)
	if err != nil {
		return nil, err
	}
	return c.ConvertDocument(stitched)
}

// ConvertPages converts already decoded page trees
func (c *Converter) ConvertPages(pages []layout.Node) ([]Day, error) {
	s := layout.NewStitcher(c.cfg.Logger)
	for _, page := range pages {
		if err := s.Add(page); err != nil {
			return nil, err
		}
	}
	return c.ConvertDocument(s.Document())
}

// ConvertDocument converts a stitched document
func (c *Converter) ConvertDocument(doc layout.Document) ([]Day, error) {
	a, err := c.Analyze(doc)
	if err != nil {
		return nil, err
	}

	days, err := BuildDays(a.Grid, a.Week, c.cfg.DefaultMealName)
	if err != nil {
		return nil, err
	}

	c.cfg.Logger.Debug("built menu", "days", len(days), "year", a.Week.Year, "week", a.Week.Week)
	return days, nil
}

// Stitch decodes every page of doc and merges them into one document
func (c *Converter) Stitch(doc pdf.Document) (layout.Document, error) {
	s := layout.NewStitcher(c.cfg.Logger)
	for i := 0; i < doc.PageCount(); i++ {
		page, err := doc.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("decoding page %d: %w", i+1, err)
		}
		if err := s.Add(page.GetLayout()); err != nil {
			return nil, err
		}
	}
	return s.Document(), nil
}

// Analyze reconstructs the table grid and the calendar week of doc
func (c *Converter) Analyze(doc layout.Document) (*Analysis, error) {
	log := c.cfg.Logger

	all := doc.TextLines()
	texts := c.filter.Apply(all)
	log.Debug("filtered text lines", "kept", len(texts), "dropped", len(all)-len(texts))

	table := BuildColumns(texts, c.cfg.ColumnTolerance)
	left, err := LeftEdge(table)
	if err != nil {
		return nil, err
	}
	log.Debug("built columns", "columns", len(table), "left", left)

	dividers := ExtractDividers(doc.Rects(), left, c.cfg.HorizontalTolerance, c.cfg.AnchorTolerance)
	log.Debug("extracted dividers", "dividers", len(dividers))

	grid, err := AssembleGrid(table, dividers)
	if err != nil {
		return nil, err
	}

	week, err := FindCalendarWeek(all)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Table:    table,
		Dividers: dividers,
		Grid:     grid,
		Week:     week,
	}, nil
}
