package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pyhub-apps/mensa2json/pkg/layout"
	"github.com/pyhub-apps/mensa2json/pkg/menu"
	"github.com/pyhub-apps/mensa2json/pkg/pdf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: extract_text <pdf_file>")
		os.Exit(1)
	}

	pdfPath := os.Args[1]

	// Open the PDF file
	fmt.Printf("Opening PDF: %s\n", pdfPath)
	doc, err := pdf.OpenFile(pdfPath)
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	fmt.Printf("Document has %d pages\n\n", doc.PageCount())

	for i := 0; i < doc.PageCount(); i++ {
		page, err := doc.GetPage(i)
		if err != nil {
			log.Printf("Failed to get page %d: %v", i+1, err)
			continue
		}

		objects := page.GetObjects()
		fmt.Printf("=== Page %d ===\n", page.GetPageNumber())
		fmt.Printf("Size: %.2f x %.2f\n", page.GetWidth(), page.GetHeight())
		fmt.Printf("Glyphs: %d, rectangles: %d\n", len(objects.Chars), len(objects.Rects))
	}

	// Show every text line with its stitched coordinates and whether the
	// converter keeps it
	stitched, err := menu.NewConverter().Stitch(doc)
	if err != nil {
		log.Fatalf("Failed to stitch pages: %v", err)
	}

	filter := menu.NewTextFilter(menu.DefaultIgnorePrefixes())
	fmt.Printf("\n%-4s %-5s %9s %9s  %s\n", "page", "keep", "x0", "ey0", "text")
	for _, line := range stitched.TextLines() {
		keep := "yes"
		if !filter.Accept(line.Text()) {
			keep = "no"
		}
		fmt.Printf("%-4d %-5s %9.2f %9.2f  %q\n", line.Page+1, keep, line.X0(), line.EY0, strings.TrimSuffix(line.Text(), "\n"))
	}

	fmt.Printf("\n%-4s %9s %9s %9s %9s\n", "page", "x0", "x1", "ey0", "ey1")
	for _, r := range stitched[layout.KindRect] {
		fmt.Printf("%-4d %9.2f %9.2f %9.2f %9.2f\n", r.Page+1, r.X0(), r.X1(), r.EY0, r.EY1)
	}
}
