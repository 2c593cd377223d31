package main

import (
	"context"
	"fmt"

	"brandbear/internal/catalog"
	"brandbear/internal/config"
	"brandbear/internal/database"
	"brandbear/internal/repository"

	"github.com/rs/zerolog"
)

// loadCatalog builds the immutable catalog from the configured source.
func loadCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceStatic:
		return catalog.New(catalog.DefaultProducts())

	case config.CatalogSourceFile:
		return catalog.LoadFiles(ctx, cfg.Catalog.Files, catalog.NewFileLoader(logger), logger)

	case config.CatalogSourceS3:
		fileLoader := catalog.NewFileLoader(logger)

		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}

		loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
		return catalog.LoadFiles(ctx, cfg.Catalog.Files, loader, logger)

	case config.CatalogSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		// The catalog is read once at start-up
		defer pool.Close()

		products, err := repository.NewProductRepository(pool, logger).GetAll(ctx)
		if err != nil {
			return nil, err
		}
		return catalog.New(products)

	default:
		return nil, fmt.Errorf("unknown catalog source: %s", cfg.Catalog.Source)
	}
}
