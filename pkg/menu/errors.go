package menu

import (
	"errors"
	"fmt"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

// ErrStructure reports a document whose pages or table geometry do not have
// the expected shape
var ErrStructure = layout.ErrStructure

// ErrPatternMismatch reports text that does not follow the expected
// templates: the calendar week header, a day name, or a meal cell
var ErrPatternMismatch = errors.New("text does not match expected pattern")

// CellError locates a meal cell that could not be parsed
type CellError struct {
	Day string
	Row int
	Err error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("meal cell %q row %d: %v", e.Day, e.Row, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
