package service

import (
	"context"

	"brandbear/internal/model"

	"github.com/google/uuid"
)

// ProductService defines read operations on the catalog.
type ProductService interface {
	// GetAll returns the products in category, in catalog order.
	GetAll(ctx context.Context, category model.Category) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// SessionService defines the storefront operations of a shopper session.
type SessionService interface {
	// Create starts a new session.
	Create(ctx context.Context) (*model.SessionView, error)

	// Get returns the current view of a session.
	Get(ctx context.Context, id uuid.UUID) (*model.SessionView, error)

	// End discards a session.
	End(ctx context.Context, id uuid.UUID) error

	// SetCategory changes the category filter.
	SetCategory(ctx context.Context, id uuid.UUID, category model.Category) (*model.SessionView, error)

	// SelectProduct opens a product for inspection; an empty productID clears the selection.
	SelectProduct(ctx context.Context, id uuid.UUID, productID string) (*model.SessionView, error)

	// ChooseSize records the size for the inspected product.
	ChooseSize(ctx context.Context, id uuid.UUID, size string) (*model.SessionView, error)

	// AddToCart adds the inspected product at the chosen size.
	AddToCart(ctx context.Context, id uuid.UUID) (*model.SessionView, error)

	// RemoveFromCart removes the (productID, size) line if present.
	RemoveFromCart(ctx context.Context, id uuid.UUID, productID, size string) (*model.SessionView, error)

	// SetCartOpen shows or hides the cart.
	SetCartOpen(ctx context.Context, id uuid.UUID, open bool) (*model.SessionView, error)

	// Checkout simulates a checkout of the current cart.
	Checkout(ctx context.Context, id uuid.UUID) (*model.CheckoutReceipt, error)

	// SendMessage forwards a message to the styling assistant.
	SendMessage(ctx context.Context, id uuid.UUID, text string) (*model.SendResult, error)
}
