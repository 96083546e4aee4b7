package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item sold by the chain.
type Product struct {
	ID            uuid.UUID
	Name          string
	Category      string // e.g. Beverage, Food, Merchandise.
	Price         decimal.Decimal
	StockQuantity int // Never negative; decremented only on order commit.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
