package usecase

import (
	"context"

	"brewhub/internal/domain/entity"
	"brewhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcessOrderInput carries everything the atomic order commit needs. A nil
// CustomerID marks a guest order; PointsToRedeem must then be zero.
type ProcessOrderInput struct {
	Cart           *entity.Cart
	CustomerID     *uuid.UUID
	EmployeeID     uuid.UUID
	StoreID        uuid.UUID
	PointsToRedeem int
}

// ProcessOrderOutput reports the committed order.
type ProcessOrderOutput struct {
	Order *entity.Order `json:"order"`
}

// AppliedPromotionResult is one successfully applied promotion of a pass, with
// the capped discount it actually granted.
type AppliedPromotionResult struct {
	PromotionID uuid.UUID       `json:"promotion_id"`
	Name        string          `json:"name"`
	Discount    decimal.Decimal `json:"discount"`
}

// PromotionFailure is one promotion of a pass that could not be applied. The
// rest of the pass continues past it.
type PromotionFailure struct {
	PromotionID uuid.UUID `json:"promotion_id"`
	Reason      string    `json:"reason"`
}

// ApplyPromotionsInput names the committed order and the promotions to try
// against it, in the order given.
type ApplyPromotionsInput struct {
	OrderID      uuid.UUID
	PromotionIDs []uuid.UUID
}

// ApplyPromotionsOutput reports the outcome of one promotion pass.
type ApplyPromotionsOutput struct {
	Applied       []*AppliedPromotionResult `json:"applied"`
	Failed        []*PromotionFailure       `json:"failed"`
	TotalDiscount decimal.Decimal           `json:"total_discount"`
	FinalTotal    decimal.Decimal           `json:"final_total"`
}

// OrderDetail is an order joined with its resolved line items and
// applied-promotion audit trail.
type OrderDetail struct {
	Order      *entity.Order                 `json:"order"`
	Items      []*repository.OrderItemDetail `json:"items"`
	Promotions []*entity.AppliedPromotion    `json:"promotions"`
}

// OrderUsecase defines the order-processing use cases: the atomic commit of a
// cart into an order and the best-effort promotion pass over a committed
// order, plus order browsing.
type OrderUsecase interface {
	// ProcessOrder commits the cart as an order in one transaction: stock is
	// re-checked and decremented, loyalty points are redeemed and earned, and
	// the order with its price-snapshotted items is persisted. Any failure
	// rolls the whole commit back.
	ProcessOrder(ctx context.Context, input ProcessOrderInput) (*ProcessOrderOutput, error)

	// ApplyPromotions runs one sequential, best-effort discount pass over a
	// committed order. Individual promotion failures are reported, not fatal;
	// the combined discount never exceeds the order total.
	ApplyPromotions(ctx context.Context, input ApplyPromotionsInput) (*ApplyPromotionsOutput, error)

	// GetOrder retrieves one order with its items and promotion audit trail.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderDetail, error)

	// ListRecentOrders retrieves the newest orders with display names joined.
	ListRecentOrders(ctx context.Context) ([]*repository.OrderSummary, error)
}
