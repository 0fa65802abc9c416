package order

import (
	"errors"
	"time"
)

var (
	ErrEmptyName       = errors.New("order name is required")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create places a new pending order for a single purchased line.
func (s *Service) Create(name string, price float64, quantity int, deliveryAddress string) (Order, error) {
	if name == "" {
		return Order{}, ErrEmptyName
	}
	if quantity <= 0 {
		return Order{}, ErrInvalidQuantity
	}

	ord := Order{
		Name:            name,
		Price:           price,
		Quantity:        quantity,
		Status:          StatusPending,
		OrderDate:       time.Now().UTC(),
		DeliveryAddress: deliveryAddress,
	}
	return s.repo.Create(ord), nil
}

// Cancel marks an order cancelled regardless of its current status; the
// store has no authority model, gating to pending orders is the caller's
// concern. Cancelling an already-cancelled order succeeds.
func (s *Service) Cancel(id int64) error {
	return s.repo.SetStatus(id, StatusCancelled)
}

func (s *Service) GetByID(id int64) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List() []Order {
	return s.repo.List()
}

// PurgeCancelled removes all cancelled orders from the collection.
func (s *Service) PurgeCancelled() int {
	return s.repo.PurgeCancelled()
}
