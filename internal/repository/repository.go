package repository

import (
	"context"

	"brandbear/internal/model"
)

// ProductRepository defines the interface for catalog data access operations.
type ProductRepository interface {
	// CreateSchema creates the products table if it does not exist.
	CreateSchema(ctx context.Context) error

	// GetAll retrieves every product in catalog order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// ReplaceAll swaps the stored catalog for products in a single transaction,
	// keeping their order.
	ReplaceAll(ctx context.Context, products []model.Product) error
}
