package pdf

// Metadata represents PDF document metadata
type Metadata struct {
	Title     string
	Author    string
	Creator   string
	Producer  string
	PageCount int
}

// Objects represents the raw content of a page
type Objects struct {
	Chars []CharObject
	Rects []RectObject
}

// CharObject represents a character in the PDF. Coordinates use the PDF
// convention: origin bottom-left, Y growing upwards.
type CharObject struct {
	Text     string
	Font     string
	FontSize float64
	Baseline float64
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
	Width    float64
}

// IsSpace reports whether the character is blank
func (c CharObject) IsSpace() bool {
	for _, r := range c.Text {
		if r != ' ' && r != '\t' && r != '\u00a0' {
			return false
		}
	}
	return true
}

// RectObject represents a rectangle in the PDF
type RectObject struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// Engine selects the decoding backend
type Engine string

const (
	EngineAuto       Engine = "auto"
	EngineLedongthuc Engine = "ledongthuc"
	EngineDslipak    Engine = "dslipak"
)

// LayoutOption is a function that modifies how glyphs are assembled into
// text lines
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	YTolerance   float64
	CharMargin   float64
	WordMargin   float64
	DescentRatio float64
}

func defaultLayoutConfig() layoutConfig {
	return layoutConfig{
		YTolerance:   3.0,
		CharMargin:   2.0,
		WordMargin:   0.1,
		DescentRatio: 0.2,
	}
}

// WithYTolerance sets the baseline tolerance for grouping glyphs into lines
func WithYTolerance(tolerance float64) LayoutOption {
	return func(c *layoutConfig) {
		c.YTolerance = tolerance
	}
}

// WithCharMargin sets the gap, relative to the font size, above which a line
// is split into separate text lines
func WithCharMargin(margin float64) LayoutOption {
	return func(c *layoutConfig) {
		c.CharMargin = margin
	}
}

// WithWordMargin sets the gap, relative to the font size, above which a
// space is inserted between two glyphs
func WithWordMargin(margin float64) LayoutOption {
	return func(c *layoutConfig) {
		c.WordMargin = margin
	}
}
