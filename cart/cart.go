package cart

import (
	"errors"
	"sync"

	"food-delivery-app/models"
)

var (
	// ErrInvalidIndex is returned for a stale or out-of-range line
	// position. The remaining sequence is left untouched.
	ErrInvalidIndex = errors.New("invalid cart item index")
	// ErrEmptyCart is returned when checkout is attempted with no
	// line items.
	ErrEmptyCart = errors.New("cart is empty")
)

// Cart is an ordered sequence of line items scoped to one session.
// Every operation runs under the cart's own lock: the HTTP surface
// exposes a session's cart to concurrent requests, and the
// check-then-clear sequence in Checkout must not interleave with
// mutations.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add appends a new line item with quantity 1. Repeated adds of the
// same dish produce independent lines; there is no merge-by-name.
func (c *Cart) Add(name string, unitPrice float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, models.CartItem{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// Increase bumps the quantity at index. No upper bound.
func (c *Cart) Increase(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return ErrInvalidIndex
	}
	c.items[index].Quantity++
	return nil
}

// Decrease lowers the quantity at index. Quantity never drops below
// 1: at 1 the call is a no-op, removal is a separate operation.
func (c *Cart) Decrease(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return ErrInvalidIndex
	}
	if c.items[index].Quantity > 1 {
		c.items[index].Quantity--
	}
	return nil
}

// Remove deletes the line at index; later lines shift down by one.
func (c *Cart) Remove(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return ErrInvalidIndex
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// ItemCount is the number of line items, not total quantity.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Snapshot returns a copy of the current line items for read-only
// use. Indices into the snapshot go stale after any mutation.
func (c *Cart) Snapshot() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Checkout atomically snapshots and clears the cart, refusing with
// ErrEmptyCart when there is nothing in it. Order placement is the
// only caller; holding the lock across the check and the clear keeps
// two concurrent placements from both succeeding on one cart.
func (c *Cart) Checkout() ([]models.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return nil, ErrEmptyCart
	}
	out := c.items
	c.items = nil
	return out, nil
}
