package entity

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// Cart is the ephemeral product-to-quantity mapping being composed into an
// order. It is an explicit value passed into and returned from cart and order
// operations, never persisted and never shared ambient state.
type Cart struct {
	items map[uuid.UUID]int
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[uuid.UUID]int)}
}

// Quantity returns the quantity currently requested for the product, zero if
// the product is not in the cart.
func (c *Cart) Quantity(productID uuid.UUID) int {
	return c.items[productID]
}

// Add increments the cart entry for the product, creating it if absent, and
// returns the new quantity. Callers are expected to have run the stock
// admission check first.
func (c *Cart) Add(productID uuid.UUID, quantity int) int {
	if c.items == nil {
		c.items = make(map[uuid.UUID]int)
	}
	c.items[productID] += quantity

	return c.items[productID]
}

// Remove deletes the product's entry entirely and reports whether it existed.
func (c *Cart) Remove(productID uuid.UUID) bool {
	if _, ok := c.items[productID]; !ok {
		return false
	}
	delete(c.items, productID)

	return true
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Clear empties the cart. Called after a successful order commit.
func (c *Cart) Clear() {
	c.items = make(map[uuid.UUID]int)
}

// ProductIDs returns the cart's product identifiers in a stable order, so that
// multi-row operations built from the cart touch rows deterministically.
func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})

	return ids
}
