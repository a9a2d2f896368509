// Package cart holds the per-session shopping cart state container.
//
// A cart line is a value snapshot of the product at the moment it was first
// added: later catalog edits (price changes, renames) never reach lines that
// are already in a cart. Carts are not persisted; a fresh session starts
// empty.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/pixora/storefront/internal/domain/catalog"
)

// Line is one distinct product in the cart: a product snapshot plus a
// quantity that is always >= 1.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Cart maintains the session's lines and derives aggregate totals. It is
// safe for concurrent use.
//
// Lines keep insertion order; re-adding an existing product increments its
// quantity without moving it. ItemCount and Subtotal are recomputed from the
// lines on every read and never stored, so they cannot drift.
type Cart struct {
	mu    sync.RWMutex
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem merges qty onto the existing line for p.ID, or appends a new line
// holding a snapshot of p. The increment may be any value; if the merged
// quantity drops to zero or below the line is removed rather than kept at a
// non-positive quantity.
func (c *Cart) AddItem(p catalog.Product, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID != p.ID {
			continue
		}
		c.lines[i].Quantity += qty
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
	if qty <= 0 {
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: qty})
}

// UpdateQuantity sets the line's quantity. A quantity of zero or below
// removes the line entirely. Missing ids are a no-op.
func (c *Cart) UpdateQuantity(id string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID != id {
			continue
		}
		if qty <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = qty
		}
		return
	}
}

// RemoveItem removes the line with the given id, if present.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns value copies of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is the sum of price x quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
