package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbasket/green-basket-backend/internal/product"
)

var (
	spinach = product.Product{ID: 1, Name: "Fresh Spinach", Price: 2.99}
	carrots = product.Product{ID: 2, Name: "Carrots", Price: 1.99}
)

func newTestService() *Service {
	return NewService(NewInMemoryRepository())
}

func TestAddItem_SameProductIncrementsQuantity(t *testing.T) {
	s := newTestService()

	s.AddItem(spinach)
	items := s.AddItem(spinach)

	require.Len(t, items, 1)
	assert.Equal(t, spinach.ID, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	s := newTestService()

	s.AddItem(spinach)
	s.AddItem(carrots)
	s.AddItem(spinach)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, spinach.ID, items[0].ID)
	assert.Equal(t, carrots.ID, items[1].ID)
}

func TestTotal(t *testing.T) {
	s := newTestService()
	assert.Equal(t, 0.0, s.Total())

	s.AddItem(spinach)
	s.AddItem(spinach)
	s.AddItem(carrots)

	// 2*2.99 + 1*1.99
	assert.InDelta(t, 7.97, s.Total(), 1e-9)
}

func TestUpdateQuantity(t *testing.T) {
	s := newTestService()
	s.AddItem(spinach)

	s.UpdateQuantity(spinach.ID, 5)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 5, s.Items()[0].Quantity)
}

func TestUpdateQuantity_BelowOneIsRejected(t *testing.T) {
	s := newTestService()
	s.AddItem(spinach)

	s.UpdateQuantity(spinach.ID, 0)
	s.UpdateQuantity(spinach.ID, -3)

	items := s.Items()
	require.Len(t, items, 1, "quantity below 1 must not delete the item")
	assert.Equal(t, 1, items[0].Quantity, "quantity below 1 must never be stored")
}

func TestUpdateQuantity_MissingIDIsNoop(t *testing.T) {
	s := newTestService()
	s.AddItem(spinach)

	s.UpdateQuantity(999, 4)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestRemoveItem_Idempotent(t *testing.T) {
	s := newTestService()
	s.AddItem(spinach)
	s.AddItem(carrots)

	s.RemoveItem(spinach.ID)
	s.RemoveItem(spinach.ID) // second removal is a no-op

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, carrots.ID, items[0].ID)
}

func TestClear(t *testing.T) {
	s := newTestService()
	s.AddItem(spinach)
	s.AddItem(carrots)

	s.Clear()

	assert.Empty(t, s.Items())
	assert.Equal(t, 0.0, s.Total())

	s.Clear() // clearing an empty cart is fine
	assert.Empty(t, s.Items())
}
