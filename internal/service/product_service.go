package service

import (
	"context"

	"brandbear/internal/catalog"
	"brandbear/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(c *catalog.Catalog, logger zerolog.Logger) ProductService {
	return &productService{
		catalog: c,
		logger:  logger.With().Str("service", "product").Logger(),
	}
}

// GetAll returns the products in category, in catalog order.
func (s *productService) GetAll(ctx context.Context, category model.Category) ([]model.Product, error) {
	products := s.catalog.Filter(category)

	s.logger.Debug().
		Str("category", string(category)).
		Int("count", len(products)).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, ok := s.catalog.ByID(id)
	if !ok {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return &product, nil
}
