// Package usecase defines the application-layer interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one resolved line of a cart: the live product joined with the
// requested quantity.
type CartLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView is the resolved, displayable state of a cart.
type CartView struct {
	Lines    []*CartLine     `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartUsecase defines the cart-building use cases. The cart itself is a value
// owned by the caller; every operation takes it explicitly and mutates it only
// after its admission checks pass.
type CartUsecase interface {
	// AddItem admits quantity of the product into the cart. The combined
	// requested quantity must not exceed the product's current stock; a
	// rejected add leaves the cart unchanged.
	AddItem(ctx context.Context, cart *entity.Cart, productID uuid.UUID, quantity int) error

	// RemoveItem removes the product's line from the cart entirely.
	RemoveItem(ctx context.Context, cart *entity.Cart, productID uuid.UUID) error

	// View resolves the cart against the live catalog: display names, current
	// unit prices, line totals and the subtotal.
	View(ctx context.Context, cart *entity.Cart) (*CartView, error)
}
