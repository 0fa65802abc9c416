package cart

import "github.com/greenbasket/green-basket-backend/internal/product"

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddItem puts a product in the cart: quantity 1 for a new product, +1 for a
// product already present. It always succeeds and returns the updated cart.
func (s *Service) AddItem(p product.Product) []Item {
	return s.repo.AddItem(p)
}

func (s *Service) RemoveItem(id int) {
	s.repo.RemoveItem(id)
}

func (s *Service) UpdateQuantity(id int, quantity int) {
	s.repo.UpdateQuantity(id, quantity)
}

func (s *Service) Clear() {
	s.repo.Clear()
}

func (s *Service) Items() []Item {
	return s.repo.Items()
}

// Total returns the sum of price*quantity over the cart, 0 when empty.
func (s *Service) Total() float64 {
	total := 0.0
	for _, it := range s.repo.Items() {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
