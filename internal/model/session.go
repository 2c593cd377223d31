package model

import "github.com/google/uuid"

// SessionView is the read model returned for every session operation.
type SessionView struct {
	ID             uuid.UUID      `json:"id"`
	Category       Category       `json:"category"`
	Products       []Product      `json:"products"`
	Cart           []CartLineView `json:"cart"`
	ItemCount      int            `json:"itemCount"`
	Total          int64          `json:"total"`
	FormattedTotal string         `json:"formattedTotal"`
	CartOpen       bool           `json:"cartOpen"`
	Selection      SelectionView  `json:"selection"`
	Transcript     []Message      `json:"transcript"`
	Pending        bool           `json:"pending"`
}

// CartLineView is a cart line with its computed subtotal.
type CartLineView struct {
	ProductID         string `json:"productId"`
	Name              string `json:"name"`
	Image             string `json:"image"`
	Size              string `json:"size"`
	Quantity          int    `json:"quantity"`
	Price             int64  `json:"price"`
	Subtotal          int64  `json:"subtotal"`
	FormattedSubtotal string `json:"formattedSubtotal"`
}

// SelectionView is the inspected product, chosen size and size error flag.
type SelectionView struct {
	Product   *Product `json:"product,omitempty"`
	Size      string   `json:"size"`
	SizeError bool     `json:"sizeError"`
}

// CheckoutReceipt is the result of a simulated checkout.
type CheckoutReceipt struct {
	ID             uuid.UUID      `json:"id"`
	Lines          []CartLineView `json:"lines"`
	Total          int64          `json:"total"`
	FormattedTotal string         `json:"formattedTotal"`
	Notice         string         `json:"notice"`
}

// SendResult reports whether a message was accepted and the resulting session.
type SendResult struct {
	Accepted bool        `json:"accepted"`
	Session  SessionView `json:"session"`
}

// CategoryRequest is the payload for changing the category filter.
type CategoryRequest struct {
	Category string `json:"category" validate:"required,oneof=All Classic Streetwear"`
}

// SelectionRequest is the payload for selecting a product; an empty id clears it.
type SelectionRequest struct {
	ProductID string `json:"productId" validate:"max=64"`
}

// SizeRequest is the payload for choosing a size.
type SizeRequest struct {
	Size string `json:"size" validate:"required,max=16"`
}

// CartOpenRequest is the payload for showing or hiding the cart.
type CartOpenRequest struct {
	Open *bool `json:"open" validate:"required"`
}

// MessageRequest is the payload for sending a message to the assistant.
// Blank text is accepted and ignored.
type MessageRequest struct {
	Text string `json:"text" validate:"max=4000"`
}
