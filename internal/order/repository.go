package order

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Repository defines storage operations for orders.
//
// Orders are session state like the cart: memory-resident, gone on restart.
// Unlike the cart, operations on unknown ids return ErrNotFound.
type Repository interface {
	Create(ord Order) Order
	GetByID(id int64) (Order, error)
	List() []Order
	SetStatus(id int64, status Status) error
	PurgeCancelled() int
}

// InMemoryRepository keeps orders in insertion order.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	lastID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create assigns a fresh id and stores the order. Ids are millisecond
// creation timestamps, bumped when two orders land in the same millisecond
// so they stay distinct and increasing.
func (r *InMemoryRepository) Create(ord Order) Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	ord.ID = id
	r.orders = append(r.orders, ord)
	return ord
}

func (r *InMemoryRepository) GetByID(id int64) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *InMemoryRepository) SetStatus(id int64, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// PurgeCancelled removes cancelled orders and reports how many were removed.
// Orders in any other status are untouched.
func (r *InMemoryRepository) PurgeCancelled() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.orders[:0]
	removed := 0
	for _, ord := range r.orders {
		if ord.Status == StatusCancelled {
			removed++
			continue
		}
		kept = append(kept, ord)
	}
	r.orders = kept
	return removed
}
