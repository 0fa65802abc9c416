package order

import "time"

// Status represents where an order is in its lifecycle.
type Status string

const (
	// StatusPending indicates the order has been placed but not processed.
	StatusPending Status = "pending"
	// StatusProcessing indicates the order is being prepared.
	StatusProcessing Status = "processing"
	// StatusCompleted indicates the order was delivered.
	StatusCompleted Status = "completed"
	// StatusCancelled indicates the order was cancelled by the customer.
	StatusCancelled Status = "cancelled"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Order records a purchased cart line. Checkout creates one Order per cart
// line, not one per transaction, so Name/Price/Quantity describe a single
// product.
type Order struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Quantity        int       `json:"quantity"`
	Status          Status    `json:"status"`
	OrderDate       time.Time `json:"orderDate"`
	DeliveryAddress string    `json:"deliveryAddress"`
}
