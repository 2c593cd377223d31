package catalog

import (
	"context"
	"fmt"
	"sync"

	"brandbear/internal/model"

	"github.com/rs/zerolog"
)

// LoadFiles loads every catalog file concurrently and merges them in the
// order the paths are given.
func LoadFiles(ctx context.Context, paths []string, loader Loader, logger zerolog.Logger) (*Catalog, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("at least one catalog file is required")
	}

	logger = logger.With().Str("component", "catalog").Logger()
	logger.Info().Int("file_count", len(paths)).Msg("loading catalog")

	type loadResult struct {
		index    int
		products []model.Product
		err      error
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			products, err := loader.Load(ctx, path)
			resultChan <- loadResult{index: index, products: products, err: err}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	var merged []model.Product
	for i, result := range results {
		if result.err != nil {
			logger.Error().Err(result.err).Str("file", paths[i]).Msg("failed to load catalog file")
			return nil, fmt.Errorf("failed to load catalog file %s: %w", paths[i], result.err)
		}
		merged = append(merged, result.products...)
	}

	c, err := New(merged)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("total_products", c.Len()).Msg("catalog loaded successfully")

	return c, nil
}
