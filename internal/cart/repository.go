package cart

import (
	"sync"

	"github.com/greenbasket/green-basket-backend/internal/product"
)

// Repository provides access to the active cart.
//
// The cart is session state: it is never persisted, so a restart resets it
// to empty. Missing ids are silent no-ops on every operation, which keeps
// RemoveItem and UpdateQuantity idempotent.
type Repository interface {
	AddItem(p product.Product) []Item
	RemoveItem(id int)
	UpdateQuantity(id int, quantity int)
	Clear()
	Items() []Item
}

// InMemoryRepository is the only cart implementation; items keep insertion
// order.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) AddItem(p product.Product) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i].Quantity++
			return r.snapshot()
		}
	}
	r.items = append(r.items, newItem(p))
	return r.snapshot()
}

func (r *InMemoryRepository) RemoveItem(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the matching item. Quantities below 1
// are rejected (no-op, never a delete): the storefront disables the decrement
// control at quantity 1, so such requests never represent intent.
func (r *InMemoryRepository) UpdateQuantity(id int, quantity int) {
	if quantity < 1 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Quantity = quantity
			return
		}
	}
}

func (r *InMemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

func (r *InMemoryRepository) Items() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

func (r *InMemoryRepository) snapshot() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}
