package ledger

import (
	"context"

	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loyalty guards customer point balances and owns the point/currency
// conversion policy. Both rates come from configuration so they can be tuned
// without touching the order algorithm.
type Loyalty struct {
	customers  repository.CustomerRepository
	earnRate   int64           // Points earned per whole currency unit spent.
	redeemRate decimal.Decimal // Currency value of one redeemed point.
}

// NewLoyalty wraps the given customer repository with the configured rates.
func NewLoyalty(customers repository.CustomerRepository, earnRate int64, redeemRate decimal.Decimal) *Loyalty {
	return &Loyalty{
		customers:  customers,
		earnRate:   earnRate,
		redeemRate: redeemRate,
	}
}

// Balance returns the customer's current point balance.
func (l *Loyalty) Balance(ctx context.Context, customerID uuid.UUID) (int, error) {
	customer, err := l.customers.FindByID(ctx, customerID)
	if err != nil {
		return 0, err
	}

	return customer.LoyaltyPoints, nil
}

// Redeem decrements the customer's balance. The underlying update is guarded
// so the balance never goes negative; it fails with the domain
// InsufficientPoints error when points exceed the balance.
func (l *Loyalty) Redeem(ctx context.Context, customerID uuid.UUID, points int) error {
	if points < 1 {
		return domainerrors.ErrValidationFailed.WrapMessage("redeemed points must be at least 1")
	}

	return l.customers.RedeemPoints(ctx, customerID, points)
}

// Earn increments the customer's balance. Accrual of zero points is a no-op.
func (l *Loyalty) Earn(ctx context.Context, customerID uuid.UUID, points int) error {
	if points < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("earned points cannot be negative")
	}
	if points == 0 {
		return nil
	}

	return l.customers.EarnPoints(ctx, customerID, points)
}

// RedeemValue converts redeemed points into their monetary discount, rounded
// to the currency minor unit.
func (l *Loyalty) RedeemValue(points int) decimal.Decimal {
	return l.redeemRate.Mul(decimal.NewFromInt(int64(points))).Round(2)
}

// PointsEarned computes the points accrued for an order total: earnRate points
// per whole currency unit of the post-redemption amount.
func (l *Loyalty) PointsEarned(total decimal.Decimal) int {
	if total.IsNegative() {
		return 0
	}

	return int(total.Floor().IntPart() * l.earnRate)
}
