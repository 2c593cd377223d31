package model

// CartLine is one (product, size) entry in a cart.
type CartLine struct {
	Product      Product `json:"product"`
	Quantity     int     `json:"quantity"`
	SelectedSize string  `json:"selectedSize"`
}

// Matches reports whether the line has the identity key (productID, size).
func (l CartLine) Matches(productID, size string) bool {
	return l.Product.ID == productID && l.SelectedSize == size
}

// Subtotal returns price times quantity.
func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}
