// Command seedcatalog creates the products table and fills it from catalog
// files, or from the built-in collection when no files are given.
//
//	seedcatalog [file.jsonl.gz ...]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"brandbear/internal/catalog"
	"brandbear/internal/config"
	"brandbear/internal/database"
	"brandbear/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(files []string) error {
	_ = godotenv.Load()

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	logger := config.NewLogger(config.LoggerConfig{Level: "info", Format: "console"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	products := catalog.Default()
	if len(files) > 0 {
		products, err = catalog.LoadFiles(ctx, files, catalog.NewFileLoader(logger), logger)
		if err != nil {
			return err
		}
	}

	pool, err := database.NewPool(ctx, *dbConfig, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repository.NewProductRepository(pool, logger)
	if err := repo.CreateSchema(ctx); err != nil {
		return err
	}
	if err := repo.ReplaceAll(ctx, products.Products()); err != nil {
		return err
	}

	fmt.Printf("Seeded %d products into %s\n", products.Len(), dbConfig.Database)
	return nil
}
