// Package storefront holds the catalog filter, cart and selection state of a
// single shopper. State is a value: every transition returns a new State and
// never mutates the receiver, so callers can keep or discard either copy.
package storefront

import (
	"brandbear/internal/model"
)

// State is the cart, filter and selection state of one session.
type State struct {
	Category  model.Category
	Cart      []model.CartLine
	CartOpen  bool
	Selected  *model.Product
	Size      string
	SizeError bool
}

// NewState returns the state of a fresh session: no filter, empty cart,
// nothing selected.
func NewState() State {
	return State{Category: model.CategoryAll}
}

// Filter sets the active category.
func (s State) Filter(category model.Category) State {
	s.Category = category
	return s
}

// SelectProduct opens p for inspection, or clears the selection when p is nil.
// The chosen size is always reset so a size picked for another product cannot
// carry over.
func (s State) SelectProduct(p *model.Product) State {
	s.Size = ""
	if p == nil {
		s.Selected = nil
		return s
	}

	selected := *p
	selected.Sizes = append([]string(nil), p.Sizes...)
	s.Selected = &selected
	return s
}

// ChooseSize records size for the inspected product and clears the size error.
func (s State) ChooseSize(size string) (State, error) {
	if s.Selected == nil {
		return s, model.ErrNoProductSelected
	}
	if !s.Selected.HasSize(size) {
		return s, model.ErrInvalidSize
	}

	s.Size = size
	s.SizeError = false
	return s, nil
}

// AddToCart adds the inspected product at the chosen size.
//
// Without a chosen size it returns model.ErrSizeRequired together with a state
// whose SizeError flag is set; the cart is untouched. On success the line for
// (product, size) is incremented in place or appended with quantity 1, the
// selection is cleared and the cart is opened.
func (s State) AddToCart() (State, error) {
	if s.Selected == nil {
		return s, model.ErrNoProductSelected
	}
	if s.Size == "" {
		s.SizeError = true
		return s, model.ErrSizeRequired
	}

	cart := make([]model.CartLine, len(s.Cart), len(s.Cart)+1)
	copy(cart, s.Cart)

	found := false
	for i := range cart {
		if cart[i].Matches(s.Selected.ID, s.Size) {
			cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, model.CartLine{
			Product:      *s.Selected,
			Quantity:     1,
			SelectedSize: s.Size,
		})
	}

	s.Cart = cart
	s.Selected = nil
	s.Size = ""
	s.SizeError = false
	s.CartOpen = true
	return s, nil
}

// RemoveFromCart drops the line keyed by (productID, size). A missing key is a no-op.
func (s State) RemoveFromCart(productID, size string) State {
	cart := make([]model.CartLine, 0, len(s.Cart))
	for _, line := range s.Cart {
		if !line.Matches(productID, size) {
			cart = append(cart, line)
		}
	}
	s.Cart = cart
	return s
}

// ClearSizeError resets the size error flag.
func (s State) ClearSizeError() State {
	s.SizeError = false
	return s
}

// SetCartOpen shows or hides the cart.
func (s State) SetCartOpen(open bool) State {
	s.CartOpen = open
	return s
}

// Total returns the sum of price * quantity over all lines.
func (s State) Total() int64 {
	var total int64
	for _, line := range s.Cart {
		total += line.Subtotal()
	}
	return total
}

// ItemCount returns the number of distinct cart lines.
func (s State) ItemCount() int {
	return len(s.Cart)
}
