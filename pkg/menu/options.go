package menu

import (
	"log/slog"
)

// defaultIgnorePrefixes lists page furniture sharing the formatting of real
// table content
var defaultIgnorePrefixes = []string{
	"Wochenkarte  \n",
	"Mensa ",
	"Bitte beachten Sie die separate Information zur Lebensmittelkennzeichnung",
	"je 100g",
	"Stud.: 0,70 €",
	"Bed.:  0,80 €",
}

// DefaultIgnorePrefixes returns a copy of the built-in ignore list
func DefaultIgnorePrefixes() []string {
	return append([]string(nil), defaultIgnorePrefixes...)
}

// DefaultMealName names the unlabeled row of the plan
const DefaultMealName = "mensaVital"

// Option is a function that modifies converter behavior
type Option func(*config)

type config struct {
	IgnorePrefixes      []string
	ColumnTolerance     float64
	HorizontalTolerance float64
	AnchorTolerance     float64
	DefaultMealName     string
	Logger              *slog.Logger
}

func defaultConfig() config {
	return config{
		IgnorePrefixes:      defaultIgnorePrefixes,
		ColumnTolerance:     10.0,
		HorizontalTolerance: 1.0,
		AnchorTolerance:     5.0,
		DefaultMealName:     DefaultMealName,
		Logger:              slog.New(slog.DiscardHandler),
	}
}

// WithIgnorePrefixes replaces the list of boilerplate prefixes
func WithIgnorePrefixes(prefixes ...string) Option {
	return func(c *config) {
		c.IgnorePrefixes = append([]string(nil), prefixes...)
	}
}

// WithColumnTolerance sets the x0 distance within which text lines share a
// column
func WithColumnTolerance(tolerance float64) Option {
	return func(c *config) {
		c.ColumnTolerance = tolerance
	}
}

// WithDividerTolerances sets the maximum height of a divider and its maximum
// distance from the table's left edge
func WithDividerTolerances(horizontal, anchor float64) Option {
	return func(c *config) {
		c.HorizontalTolerance = horizontal
		c.AnchorTolerance = anchor
	}
}

// WithDefaultMealName sets the name used for rows without a category label
func WithDefaultMealName(name string) Option {
	return func(c *config) {
		c.DefaultMealName = name
	}
}

// WithLogger sets the logger for conversion diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
