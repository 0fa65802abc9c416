package product

import "strings"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// Search filters the catalog by a case-insensitive name substring and an
// exact category. An empty query or an empty/"all" category means no filter
// on that axis; catalog order is preserved.
func (s *Service) Search(query, category string) []Product {
	all := s.repo.List()
	query = strings.ToLower(query)

	out := make([]Product, 0, len(all))
	for _, p := range all {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
