// Command gencatalog writes the built-in collection as gzipped JSON-lines
// catalog files for the file and s3 catalog sources.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"brandbear/internal/catalog"
	"brandbear/internal/model"
)

func main() {
	dataDir := flag.String("dir", "data/catalog", "output directory")
	byCategory := flag.Bool("by-category", true, "write one file per category instead of a single file")
	flag.Parse()

	if err := run(*dataDir, *byCategory); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dataDir string, byCategory bool) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	files := map[string][]model.Product{}
	if byCategory {
		for _, p := range catalog.DefaultProducts() {
			name := fmt.Sprintf("%s.jsonl.gz", p.Category)
			files[name] = append(files[name], p)
		}
	} else {
		files["catalog.jsonl.gz"] = catalog.DefaultProducts()
	}

	for name, products := range files {
		path := filepath.Join(dataDir, name)
		if err := writeFile(path, products); err != nil {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
		fmt.Printf("Created %s with %d products\n", path, len(products))
	}

	return nil
}

func writeFile(path string, products []model.Product) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := catalog.Encode(file, products); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
