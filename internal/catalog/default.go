package catalog

import "brandbear/internal/model"

// DefaultProducts returns the built-in BrandBear collection.
func DefaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Midnight Velvet Blazer",
			Price:       18999,
			Category:    model.CategoryClassic,
			Description: "A premium tailored blazer in deep midnight black velvet. Perfect for high-end evening events.",
			Image:       "https://files.catbox.moe/zf90y5.png",
			Sizes:       []string{"S", "M", "L", "XL"},
		},
		{
			ID:          "2",
			Name:        "Cyber-Punk Oversized Hoodie",
			Price:       8499,
			Category:    model.CategoryStreetwear,
			Description: "Heavyweight cotton hoodie with neon purple accents and reflective BrandBear branding.",
			Image:       "https://picsum.photos/seed/bb2/800/1000",
			Sizes:       []string{"M", "L", "XL", "XXL"},
		},
		{
			ID:          "3",
			Name:        "Elysian Tailored Trousers",
			Price:       12499,
			Category:    model.CategoryClassic,
			Description: "Sharp, slim-fit trousers crafted from premium wool blend. Timeless elegance.",
			Image:       "https://picsum.photos/seed/bb3/800/1000",
			Sizes:       []string{"30", "32", "34", "36"},
		},
		{
			ID:          "4",
			Name:        "Stealth Cargo Joggers",
			Price:       6999,
			Category:    model.CategoryStreetwear,
			Description: "Multi-pocket tactical joggers in matte black with purple drawstring details.",
			Image:       "https://picsum.photos/seed/bb4/800/1000",
			Sizes:       []string{"S", "M", "L"},
		},
		{
			ID:          "5",
			Name:        "Aurora Silk Dress Shirt",
			Price:       9999,
			Category:    model.CategoryClassic,
			Description: "100% pure silk shirt with a subtle pearlescent finish. Effortless luxury.",
			Image:       "https://picsum.photos/seed/bb5/800/1000",
			Sizes:       []string{"S", "M", "L", "XL"},
		},
		{
			ID:          "6",
			Name:        "Graphite District Tee",
			Price:       3999,
			Category:    model.CategoryStreetwear,
			Description: "Premium drop-shoulder tee with high-density BrandBear graphic print.",
			Image:       "https://picsum.photos/seed/bb6/800/1000",
			Sizes:       []string{"S", "M", "L", "XL"},
		},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(DefaultProducts())
	if err != nil {
		panic(err)
	}
	return c
}
