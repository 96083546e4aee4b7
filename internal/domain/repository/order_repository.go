package repository

import (
	"context"
	"errors"
	"time"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderSummary is the read model for the order listing: one committed order
// joined with its customer, employee and store display names.
type OrderSummary struct {
	OrderID        uuid.UUID
	OrderTimestamp time.Time
	CustomerName   string // Empty for guest orders.
	EmployeeName   string
	StoreName      string
	TotalAmount    decimal.Decimal
	PointsEarned   int
	PointsRedeemed int
}

// OrderItemDetail is the read model for one order line joined with the
// product's current display name.
type OrderItemDetail struct {
	OrderItemID        uuid.UUID
	ProductName        string
	Quantity           int
	PriceAtTimeOfOrder decimal.Decimal
}

// OrderRepository defines persistence operations for orders, their items and
// the applied-promotion audit trail.
type OrderRepository interface {
	// Create persists a new order together with its items in one statement
	// scope. The caller is responsible for running it inside a transaction.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListRecent retrieves the newest orders, joined with display names.
	ListRecent(ctx context.Context, limit int) ([]*OrderSummary, error)

	// ListItems retrieves the line items of one order.
	ListItems(ctx context.Context, orderID uuid.UUID) ([]*OrderItemDetail, error)

	// RecordAppliedPromotion appends one applied-promotion audit row.
	RecordAppliedPromotion(ctx context.Context, applied *entity.AppliedPromotion) error

	// ListAppliedPromotions retrieves the audit rows of one order in
	// application order.
	ListAppliedPromotions(ctx context.Context, orderID uuid.UUID) ([]*entity.AppliedPromotion, error)

	// DeductFromTotal subtracts amount from the order's stored total. Applied
	// once per promotion pass, never per promotion.
	DeductFromTotal(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) error
}
