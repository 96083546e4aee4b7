// Package ledger contains the thin invariant-guarding wrappers over the
// persistence layer: the inventory ledger for per-product stock and the
// loyalty ledger for per-customer point balances.
package ledger

import (
	"context"

	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"

	"github.com/google/uuid"
)

// Inventory guards product stock. It is constructed over whatever repository
// the caller holds, so inside a transaction it participates in that
// transaction's isolation.
type Inventory struct {
	products repository.ProductRepository
}

// NewInventory wraps the given product repository.
func NewInventory(products repository.ProductRepository) *Inventory {
	return &Inventory{products: products}
}

// Available returns the product's current stock quantity.
func (l *Inventory) Available(ctx context.Context, productID uuid.UUID) (int, error) {
	product, err := l.products.FindByID(ctx, productID)
	if err != nil {
		return 0, err
	}

	return product.StockQuantity, nil
}

// Decrement subtracts quantity from the product's stock. The underlying update
// is guarded so stock never goes negative; it fails with the domain
// InsufficientStock error when quantity exceeds what is available.
func (l *Inventory) Decrement(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrValidationFailed.WrapMessage("decrement quantity must be at least 1")
	}

	return l.products.DecrementStock(ctx, productID, quantity)
}
