// Package mensa2json converts weekly cafeteria menu plans published as PDF
// into JSON day records
package mensa2json

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pyhub-apps/mensa2json/pkg/menu"
	"github.com/pyhub-apps/mensa2json/pkg/pdf"
)

// Re-export types for the public API
type (
	Day       = menu.Day
	Meal      = menu.Meal
	Option    = menu.Option
	Document  = pdf.Document
	Page      = pdf.Page
	Metadata  = pdf.Metadata
	CellError = menu.CellError
)

// Re-export option functions and errors
var (
	WithIgnorePrefixes    = menu.WithIgnorePrefixes
	WithColumnTolerance   = menu.WithColumnTolerance
	WithDividerTolerances = menu.WithDividerTolerances
	WithDefaultMealName   = menu.WithDefaultMealName
	WithLogger            = menu.WithLogger

	ErrStructure       = menu.ErrStructure
	ErrPatternMismatch = menu.ErrPatternMismatch
)

// Marshal serializes days as the JSON array written by the command
func Marshal(days []Day, pretty bool) ([]byte, error) {
	return menu.Marshal(days, pretty)
}

// Open opens a PDF file. It tries the ledongthuc backend first and falls
// back to dslipak.
func Open(path string) (Document, error) {
	return pdf.OpenFile(path)
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return pdf.OpenWithLedongthuc(bytes.NewReader(data), int64(len(data)))
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return pdf.OpenWithDslipak(bytes.NewReader(data), int64(len(data)))
}

// ConvertFile converts the menu plan at path
func ConvertFile(path string, opts ...Option) ([]Day, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Convert(data, opts...)
}

// Convert converts a menu plan held in memory
func Convert(data []byte, opts ...Option) ([]Day, error) {
	return ConvertReader(bytes.NewReader(data), int64(len(data)), opts...)
}

// ConvertReader converts a menu plan read from r
func ConvertReader(r io.ReaderAt, size int64, opts ...Option) ([]Day, error) {
	doc, err := pdf.Open(r, size)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return ConvertDocument(doc, opts...)
}

// ConvertDocument converts an already opened document
func ConvertDocument(doc Document, opts ...Option) ([]Day, error) {
	return menu.NewConverter(opts...).Convert(doc)
}
