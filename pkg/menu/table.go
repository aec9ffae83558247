package menu

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

// Column is a top-to-bottom run of text lines sharing a left edge
type Column []layout.Placed

// Table holds columns ordered left to right
type Table []Column

// Cell is the content of one grid slot in top-to-bottom order
type Cell []layout.Placed

// Text concatenates the cell's text lines and trims surrounding whitespace
func (c Cell) Text() string {
	var b strings.Builder
	for _, line := range c {
		b.WriteString(line.Text())
	}
	return strings.TrimSpace(b.String())
}

// Grid is indexed [column][row]
type Grid [][]Cell

// bucket collects lines whose x0 lies within tolerance of the x0 of the
// line that opened it. The key never moves as lines are added.
type bucket struct {
	x0    float64
	lines []layout.Placed
}

// BuildColumns clusters lines into columns by x0. A line joins the first
// bucket, in creation order, whose key is within tolerance; otherwise it opens
// a new bucket keyed by its own x0.
func BuildColumns(lines []layout.Placed, tolerance float64) Table {
	var buckets []*bucket
	for _, line := range lines {
		b := findBucket(buckets, line.X0(), tolerance)
		if b == nil {
			b = &bucket{x0: line.X0()}
			buckets = append(buckets, b)
		}
		b.lines = append(b.lines, line)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].x0 < buckets[j].x0
	})

	table := make(Table, len(buckets))
	for i, b := range buckets {
		col := Column(b.lines)
		sort.SliceStable(col, func(i, j int) bool {
			return col[i].EY0 > col[j].EY0
		})
		table[i] = col
	}
	return table
}

func findBucket(buckets []*bucket, x0, tolerance float64) *bucket {
	for _, b := range buckets {
		if math.Abs(x0-b.x0) < tolerance {
			return b
		}
	}
	return nil
}

// LeftEdge returns the smallest x0 in the first column of the table
func LeftEdge(table Table) (float64, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return 0, fmt.Errorf("%w: no table columns found", ErrStructure)
	}
	left := table[0][0].X0()
	for _, line := range table[0][1:] {
		left = min(left, line.X0())
	}
	return left, nil
}

// ExtractDividers returns the ey0 of every horizontal rule anchored at the
// table's left edge, sorted top to bottom. Duplicates are kept.
func ExtractDividers(rects []layout.Placed, left, horizontalTolerance, anchorTolerance float64) []float64 {
	var dividers []float64
	for _, r := range rects {
		if math.Abs(r.EY0-r.EY1) < horizontalTolerance && math.Abs(r.X0()-left) < anchorTolerance {
			dividers = append(dividers, r.EY0)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(dividers)))
	return dividers
}

// AssembleGrid splits every column into one cell per divider. A line belongs
// to the first band, scanning dividers top to bottom, whose divider lies
// strictly below its ey0; a line sitting exactly on a divider belongs to the
// band underneath. Lines at or below the lowest divider are outside the table
// and make the document unusable.
func AssembleGrid(table Table, dividers []float64) (Grid, error) {
	grid := make(Grid, len(table))
	for c, col := range table {
		rows := make([]Cell, len(dividers))
		for _, line := range col {
			i, ok := bandIndex(line.EY0, dividers)
			if !ok {
				return nil, fmt.Errorf("%w: text %q in column %d at y=%.2f lies below the lowest divider",
					ErrStructure, strings.TrimSpace(line.Text()), c, line.EY0)
			}
			rows[i] = append(rows[i], line)
		}
		grid[c] = rows
	}
	return grid, nil
}

func bandIndex(ey0 float64, dividers []float64) (int, bool) {
	for i, y := range dividers {
		if ey0 > y {
			return i, true
		}
	}
	return 0, false
}
