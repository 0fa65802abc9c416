package product

// Product represents a catalog entry. The catalog is static, externally
// supplied data; nothing in the app mutates it.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// DefaultCatalog is the seed catalog served when no other product source is
// configured.
var DefaultCatalog = []Product{
	{
		ID:          1,
		Name:        "Fresh Spinach",
		Price:       2.99,
		Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=300&h=300&fit=crop",
		Category:    "leafy greens",
		Description: "Fresh organic spinach leaves",
	},
	{
		ID:          2,
		Name:        "Carrots",
		Price:       1.99,
		Image:       "https://images.unsplash.com/photo-1447175008436-054170c2e979?w=300&h=300&fit=crop",
		Category:    "root vegetables",
		Description: "Sweet organic carrots",
	},
	{
		ID:          3,
		Name:        "Broccoli",
		Price:       3.49,
		Image:       "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=300&h=300&fit=crop",
		Category:    "cruciferous",
		Description: "Fresh broccoli crowns",
	},
	{
		ID:          4,
		Name:        "Tomatoes",
		Price:       2.49,
		Image:       "https://images.unsplash.com/photo-1546470427-1ec0a5a6c2c8?w=300&h=300&fit=crop",
		Category:    "nightshades",
		Description: "Ripe red tomatoes",
	},
	{
		ID:          5,
		Name:        "Red Onions",
		Price:       1.29,
		Image:       "https://images.unsplash.com/photo-1618512496248-a01f6a18a5af?w=300&h=300&fit=crop",
		Category:    "allium",
		Description: "Fresh red onions",
	},
	{
		ID:          6,
		Name:        "Zucchini",
		Price:       1.99,
		Image:       "https://images.unsplash.com/photo-1596185600711-5c3f2b66159e?w=300&h=300&fit=crop",
		Category:    "gourds",
		Description: "Fresh green zucchini",
	},
}
