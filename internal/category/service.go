package category

import "github.com/greenbasket/green-basket-backend/internal/product"

// Service derives the category list from the catalog. Categories are not
// stored anywhere; they exist only as product attributes.
type Service struct {
	products product.Repository
}

func NewService(products product.Repository) *Service {
	return &Service{products: products}
}

// List returns the distinct categories in catalog order.
func (s *Service) List() []Category {
	seen := map[string]bool{}
	out := []Category{}
	for _, p := range s.products.List() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, Category{Name: p.Category})
	}
	return out
}
