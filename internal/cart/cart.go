// Package cart implements the shopping cart state engine. Every mutation
// replaces the item slice wholesale, so snapshots taken via Items remain
// valid and change detection reduces to comparing Version values.
//
// A Cart is owned by a single goroutine (the UI event loop); it is not safe
// for concurrent use.
package cart

import "romarket/internal/model"

// Cart holds the cart items in insertion order, at most one per product ID.
type Cart struct {
	items   []model.CartItem
	version uint64
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add inserts a product into the cart. If the product is already present its
// quantity is incremented by one; otherwise it is appended with quantity 1.
// Existing item order is preserved.
func (c *Cart) Add(p model.Product) {
	next := make([]model.CartItem, 0, len(c.items)+1)
	found := false
	for _, item := range c.items {
		if item.ID == p.ID {
			item.Quantity++
			found = true
		}
		next = append(next, item)
	}
	if !found {
		next = append(next, model.CartItem{Product: p, Quantity: 1})
	}
	c.replace(next)
}

// Remove deletes the item with the given product ID. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID int) {
	next := make([]model.CartItem, 0, len(c.items))
	removed := false
	for _, item := range c.items {
		if item.ID == productID {
			removed = true
			continue
		}
		next = append(next, item)
	}
	if removed {
		c.replace(next)
	}
}

// UpdateQuantity adds delta to the quantity of the item with the given
// product ID. If the resulting quantity drops to zero or below the item is
// removed entirely. Other items are unaffected; an absent ID is a no-op.
func (c *Cart) UpdateQuantity(productID, delta int) {
	next := make([]model.CartItem, 0, len(c.items))
	changed := false
	for _, item := range c.items {
		if item.ID == productID {
			changed = true
			item.Quantity += delta
			if item.Quantity <= 0 {
				continue
			}
		}
		next = append(next, item)
	}
	if changed {
		c.replace(next)
	}
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []model.CartItem {
	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice returns the sum of price times quantity over all items.
// An empty cart totals zero.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems returns the sum of quantities over all items.
func (c *Cart) TotalItems() int {
	var total int
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Version returns a counter that increases on every mutation that changed
// the cart.
func (c *Cart) Version() uint64 {
	return c.version
}

// Clear empties the cart.
func (c *Cart) Clear() {
	if len(c.items) == 0 {
		return
	}
	c.replace(nil)
}

func (c *Cart) replace(items []model.CartItem) {
	c.items = items
	c.version++
}
