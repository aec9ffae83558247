package menu

import (
	"regexp"
	"strings"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

var numericOnly = regexp.MustCompile(`^[0-9\s]*$`)

// TextFilter drops headers, legal notices and numeric artifacts such as page
// numbers and allergen markers
type TextFilter struct {
	prefixes []string
}

// NewTextFilter creates a filter rejecting text starting with any of prefixes
func NewTextFilter(prefixes []string) *TextFilter {
	return &TextFilter{prefixes: prefixes}
}

// Accept reports whether text is table content
func (f *TextFilter) Accept(text string) bool {
	for _, prefix := range f.prefixes {
		if strings.HasPrefix(text, prefix) {
			return false
		}
	}
	return !numericOnly.MatchString(text)
}

// Apply returns the accepted lines in their original order
func (f *TextFilter) Apply(lines []layout.Placed) []layout.Placed {
	kept := make([]layout.Placed, 0, len(lines))
	for _, line := range lines {
		if f.Accept(line.Text()) {
			kept = append(kept, line)
		}
	}
	return kept
}
