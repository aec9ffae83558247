package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/pyhub-apps/mensa2json/pkg/menu"
	"github.com/pyhub-apps/mensa2json/pkg/pdf"
)

func main() {
	path := "testdata/plan.pdf"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	doc, err := pdf.OpenFile(path)
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	fmt.Printf("Document has %d pages\n\n", doc.PageCount())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := menu.NewConverter(menu.WithLogger(logger))

	stitched, err := c.Stitch(doc)
	if err != nil {
		log.Fatalf("Failed to stitch pages: %v", err)
	}

	a, err := c.Analyze(stitched)
	if err != nil {
		log.Fatalf("Failed to analyze table: %v", err)
	}

	fmt.Printf("Calendar week %d/%d\n", a.Week.Week, a.Week.Year)
	fmt.Printf("Columns: %d\n", len(a.Table))
	for i, col := range a.Table {
		fmt.Printf("  %d: x0=%.2f (%d lines)\n", i, col[0].X0(), len(col))
	}
	fmt.Printf("Dividers: %d\n", len(a.Dividers))
	for _, y := range a.Dividers {
		fmt.Printf("  ey0=%.2f\n", y)
	}
	fmt.Println()

	printGrid(a.Grid)
}

// printGrid prints the grid with one row per band and one column per table
// column
func printGrid(grid menu.Grid) {
	rows := getMaxRows(grid)
	if rows == 0 {
		return
	}

	// Calculate column widths
	colWidths := make([]int, len(grid))
	for j, col := range grid {
		for _, cell := range col {
			for _, line := range strings.Split(cell.Text(), "\n") {
				if n := len([]rune(line)); n > colWidths[j] {
					colWidths[j] = n
				}
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
		if colWidths[i] > 30 {
			colWidths[i] = 30 // Cap at 30 for readability
		}
	}

	printSeparator(colWidths)

	for i := 0; i < rows; i++ {
		// a cell spans as many output lines as its tallest neighbour
		cells := make([][]string, len(grid))
		height := 1
		for j, col := range grid {
			if i < len(col) {
				cells[j] = strings.Split(col[i].Text(), "\n")
			}
			height = max(height, len(cells[j]))
		}

		for k := 0; k < height; k++ {
			fmt.Print("    |")
			for j := range grid {
				text := ""
				if k < len(cells[j]) {
					text = truncate(strings.TrimSpace(cells[j][k]), colWidths[j])
				}
				fmt.Printf(" %-*s |", colWidths[j], text)
			}
			fmt.Println()
		}

		printSeparator(colWidths)
	}
}

// getMaxRows returns the maximum number of bands in any column
func getMaxRows(grid menu.Grid) int {
	maxRows := 0
	for _, col := range grid {
		if len(col) > maxRows {
			maxRows = len(col)
		}
	}
	return maxRows
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-3]) + "..."
	}
	return s
}

// printSeparator prints a table separator line
func printSeparator(colWidths []int) {
	fmt.Print("    +")
	for _, width := range colWidths {
		fmt.Print(strings.Repeat("-", width+2) + "+")
	}
	fmt.Println()
}
