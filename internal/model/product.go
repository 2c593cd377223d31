package model

import "fmt"

// Category is a catalog category.
type Category string

// Catalog categories. CategoryAll is a filter value only; no product carries it.
const (
	CategoryAll        Category = "All"
	CategoryClassic    Category = "Classic"
	CategoryStreetwear Category = "Streetwear"
)

// ParseCategory converts a filter value into a Category.
// An empty string is treated as CategoryAll.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case "", CategoryAll:
		return CategoryAll, nil
	case CategoryClassic:
		return CategoryClassic, nil
	case CategoryStreetwear:
		return CategoryStreetwear, nil
	default:
		return "", ErrInvalidCategory
	}
}

// IsProductCategory reports whether c may be assigned to a product.
func (c Category) IsProductCategory() bool {
	return c == CategoryClassic || c == CategoryStreetwear
}

// Product represents an apparel item in the catalogue.
type Product struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description string   `json:"description" db:"description"`
	Price       int64    `json:"price" db:"price"`
	Category    Category `json:"category" db:"category"`
	Image       string   `json:"image" db:"image"`
	Sizes       []string `json:"sizes" db:"sizes"`
}

// HasSize reports whether size is one of the product's sizes.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Validate checks the product invariants.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: name is required", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: price must not be negative", p.ID)
	}
	if !p.Category.IsProductCategory() {
		return fmt.Errorf("product %s: invalid category %q", p.ID, p.Category)
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("product %s: at least one size is required", p.ID)
	}

	seen := make(map[string]struct{}, len(p.Sizes))
	for _, s := range p.Sizes {
		if s == "" {
			return fmt.Errorf("product %s: empty size label", p.ID)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("product %s: duplicate size %q", p.ID, s)
		}
		seen[s] = struct{}{}
	}

	return nil
}
