package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a committed sale. It is created atomically together with its items;
// after creation the only permitted mutation is the promotion pass reducing
// TotalAmount (never increasing it).
type Order struct {
	ID             uuid.UUID
	CustomerID     *uuid.UUID // Nil for guest orders.
	EmployeeID     uuid.UUID
	StoreID        uuid.UUID
	OrderTimestamp time.Time
	TotalAmount    decimal.Decimal
	PointsEarned   int
	PointsRedeemed int
	Items          []*OrderItem
}

// OrderItem is one line of an order. PriceAtTimeOfOrder snapshots the product
// price at commit time and is immutable once written, decoupling past orders
// from later catalog price changes.
type OrderItem struct {
	ID                 uuid.UUID
	OrderID            uuid.UUID
	ProductID          uuid.UUID
	Quantity           int
	PriceAtTimeOfOrder decimal.Decimal
}

// AppliedPromotion is an append-only audit record of one promotion applied to
// an order, with the capped discount it actually granted.
type AppliedPromotion struct {
	ID                    uuid.UUID
	OrderID               uuid.UUID
	PromotionID           uuid.UUID
	DiscountAmountApplied decimal.Decimal
	AppliedAt             time.Time
}
