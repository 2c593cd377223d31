package catalog

import (
	"fmt"

	"brandbear/internal/model"
)

// Catalog is the immutable set of purchasable products.
// It is safe for concurrent use because nothing mutates it after New.
type Catalog struct {
	products []model.Product
	byID     map[string]int
}

// New validates the products and builds a catalog preserving their order.
func New(products []model.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one product")
	}

	c := &Catalog{
		products: make([]model.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid product: %w", err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}

		p.Sizes = append([]string(nil), p.Sizes...)
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []model.Product {
	return c.Filter(model.CategoryAll)
}

// Filter returns the products in the given category in catalog order,
// or every product for model.CategoryAll.
func (c *Catalog) Filter(category model.Category) []model.Product {
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if category == model.CategoryAll || p.Category == category {
			out = append(out, clone(p))
		}
	}
	return out
}

// ByID looks up a product by id.
func (c *Catalog) ByID(id string) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return clone(c.products[i]), true
}

func clone(p model.Product) model.Product {
	p.Sizes = append([]string(nil), p.Sizes...)
	return p
}
