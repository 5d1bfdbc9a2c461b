package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// main normalizes a raw scraped CSV into the processed catalog file the
// server loads at startup: malformed rows dropped, duplicate names kept
// first-wins, columns written in canonical order.
// Usage: go run cmd/seed/main.go -in data/raw/products.csv -out data/processed/products_macro.csv
// This is a standalone CLI tool, not part of the main application
func main() {
	in := flag.String("in", "data/raw/products.csv", "raw scraped CSV")
	out := flag.String("out", "data/processed/products_macro.csv", "processed catalog CSV")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MERCADONA AGENT - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("Failed to open raw CSV: %v", err)
	}
	defer f.Close()

	products, err := services.ParseCatalog(f)
	if err != nil {
		log.Fatalf("Failed to parse raw CSV: %v", err)
	}
	log.Printf("✓ Parsed %d valid products from %s", len(products), *in)

	seen := make(map[string]bool, len(products))
	deduped := products[:0]
	for _, p := range products {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		deduped = append(deduped, p)
	}
	if dropped := len(products) - len(deduped); dropped > 0 {
		log.Printf("✓ Dropped %d duplicate product names", dropped)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer outFile.Close()

	w := csv.NewWriter(outFile)
	header := []string{
		models.ColCategory,
		models.ColName,
		models.ColSubtitle,
		models.ColPrice,
		models.ColDiscountPrice,
		models.ColMainImageURL,
		models.ColSecondaryImageURL,
	}
	if err := w.Write(header); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}
	for _, p := range deduped {
		record := []string{
			p.Category,
			p.Name,
			p.Subtitle,
			p.Price,
			p.DiscountPrice,
			p.MainImageURL,
			p.SecondaryImageURL,
		}
		if err := w.Write(record); err != nil {
			log.Fatalf("Failed to write record: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Products: %d\n", len(deduped))
	fmt.Printf("Output:   %s\n", *out)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Point CATALOG_CSV at the output file (or keep the default)")
	fmt.Println("2. Start the server: go run main.go")
	fmt.Println()
}
