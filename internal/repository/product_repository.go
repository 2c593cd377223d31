package repository

import (
	"context"
	"fmt"

	"brandbear/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL CHECK (price >= 0),
		category TEXT NOT NULL CHECK (category IN ('Classic', 'Streetwear')),
		image TEXT NOT NULL DEFAULT '',
		sizes TEXT[] NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_products_position ON products(position);
`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// CreateSchema creates the products table if it does not exist.
func (r *productRepository) CreateSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, productSchema); err != nil {
		r.logger.Error().Err(err).Msg("failed to create product schema")
		return fmt.Errorf("failed to create product schema: %w", err)
	}
	return nil
}

// GetAll retrieves every product in catalog order.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, description, price, category, image, sizes
		FROM products
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Image, &p.Sizes)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	r.logger.Debug().Int("count", len(products)).Msg("loaded products")

	return products, nil
}

// ReplaceAll swaps the stored catalog for products in a single transaction.
func (r *productRepository) ReplaceAll(ctx context.Context, products []model.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// No-op after a successful commit
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear products")
		return fmt.Errorf("failed to clear products: %w", err)
	}

	query := `
		INSERT INTO products (id, position, name, description, price, category, image, sizes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	batch := &pgx.Batch{}
	for i, p := range products {
		batch.Queue(query, p.ID, i, p.Name, p.Description, p.Price, string(p.Category), p.Image, p.Sizes)
	}

	results := tx.SendBatch(ctx, batch)
	for _, p := range products {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			r.logger.Error().Err(err).Str("product_id", p.ID).Msg("failed to insert product")
			return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit products")
		return fmt.Errorf("failed to commit products: %w", err)
	}

	r.logger.Info().Int("count", len(products)).Msg("replaced catalog")

	return nil
}
