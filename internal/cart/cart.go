package cart

import "github.com/greenbasket/green-basket-backend/internal/product"

// Item is a single product line in the active cart. At most one Item exists
// per product id; adding the same product again increments Quantity instead.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

func newItem(p product.Product) Item {
	return Item{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Quantity:    1,
	}
}
