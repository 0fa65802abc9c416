package checkout

import (
	"errors"
	"time"

	"github.com/greenbasket/green-basket-backend/internal/cart"
	"github.com/greenbasket/green-basket-backend/internal/order"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// DeliveryFee is the flat delivery charge added to every checkout.
const DeliveryFee = 5.00

// Summary is the price breakdown shown on the payment page.
type Summary struct {
	Items      []cart.Item `json:"items"`
	Subtotal   float64     `json:"subtotal"`
	Delivery   float64     `json:"delivery"`
	GrandTotal float64     `json:"grandTotal"`
}

// Service runs the simulated checkout: no gateway, no network, just a fixed
// processing delay followed by order creation.
type Service struct {
	cart   *cart.Service
	orders *order.Service
	delay  time.Duration
}

func NewService(cartService *cart.Service, orderService *order.Service, delay time.Duration) *Service {
	return &Service{cart: cartService, orders: orderService, delay: delay}
}

// Summary returns the current cart with totals.
func (s *Service) Summary() Summary {
	subtotal := s.cart.Total()
	return Summary{
		Items:      s.cart.Items(),
		Subtotal:   subtotal,
		Delivery:   DeliveryFee,
		GrandTotal: subtotal + DeliveryFee,
	}
}

// Checkout simulates payment over the current cart, then turns every cart
// line into its own pending order sharing the delivery address, and clears
// the cart. The delay is a pure timing simulation: it cannot be cancelled
// and is never retried.
func (s *Service) Checkout(deliveryAddress string) ([]order.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	placed := make([]order.Order, 0, len(items))
	for _, it := range items {
		ord, err := s.orders.Create(it.Name, it.Price, it.Quantity, deliveryAddress)
		if err != nil {
			return placed, err
		}
		placed = append(placed, ord)
	}

	s.cart.Clear()
	return placed, nil
}
