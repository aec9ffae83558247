package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pyhub-apps/mensa2json/pkg/menu"
	"github.com/pyhub-apps/mensa2json/pkg/pdf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: benchmark <pdf-file>")
		os.Exit(1)
	}

	pdfPath := os.Args[1]
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		log.Fatalf("Failed to read PDF: %v", err)
	}

	fmt.Printf("=== mensa2json Benchmark ===\n")
	fmt.Printf("File: %s (%d bytes)\n", pdfPath, len(data))

	for _, engine := range []pdf.Engine{pdf.EngineLedongthuc, pdf.EngineDslipak} {
		fmt.Printf("\n--- %s ---\n", engine)
		if err := benchmark(engine, data); err != nil {
			fmt.Printf("Failed: %v\n", err)
		}
	}
}

func benchmark(engine pdf.Engine, data []byte) error {
	// Benchmark PDF opening
	start := time.Now()
	doc, err := pdf.OpenWithEngine(engine, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}
	defer doc.Close()
	openTime := time.Since(start)

	fmt.Printf("Pages: %d\n", doc.PageCount())
	fmt.Printf("Open time: %v\n", openTime)

	// Benchmark object extraction
	var totalChars, totalRects int
	start = time.Now()
	for i := 0; i < doc.PageCount(); i++ {
		page, err := doc.GetPage(i)
		if err != nil {
			return err
		}
		objects := page.GetObjects()
		totalChars += len(objects.Chars)
		totalRects += len(objects.Rects)
	}
	objectTime := time.Since(start)

	fmt.Printf("Object extraction time: %v\n", objectTime)
	fmt.Printf("Total glyphs: %d, rects: %d\n", totalChars, totalRects)
	fmt.Printf("Objects/sec: %.0f obj/sec\n", float64(totalChars+totalRects)/objectTime.Seconds())

	// Benchmark the conversion pipeline
	start = time.Now()
	days, err := menu.NewConverter().Convert(doc)
	if err != nil {
		return err
	}
	convertTime := time.Since(start)

	meals := 0
	for _, day := range days {
		meals += len(day.Meals)
	}
	fmt.Printf("Conversion time: %v\n", convertTime)
	fmt.Printf("Days: %d, meals: %d\n", len(days), meals)
	return nil
}
