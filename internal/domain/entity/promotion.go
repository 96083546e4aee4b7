package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType distinguishes percentage discounts from fixed amounts.
type DiscountType string

const (
	// DiscountTypePercent discounts a percentage of the order total.
	DiscountTypePercent DiscountType = "PERCENT"
	// DiscountTypeFixed discounts a fixed currency amount.
	DiscountTypeFixed DiscountType = "FIXED"
)

// Valid reports whether the discount type is one of the known values.
func (t DiscountType) Valid() bool {
	return t == DiscountTypePercent || t == DiscountTypeFixed
}

// Promotion is a discount campaign. A promotion with a non-nil RequiredPoints
// is a loyalty-tier promotion and is excluded from the general promotion flow
// used at order creation.
type Promotion struct {
	ID             uuid.UUID
	Name           string
	Description    string
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal // Percentage for PERCENT, currency amount for FIXED.
	StartDate      *time.Time      // Nil means no lower bound on validity.
	EndDate        *time.Time      // Nil means no upper bound on validity.
	RequiredPoints *int            // Nil for general promotions.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsGeneral reports whether the promotion is selectable at order-creation time,
// i.e. not gated behind a loyalty-point threshold.
func (p *Promotion) IsGeneral() bool {
	return p.RequiredPoints == nil
}

// ActiveOn reports whether the promotion's validity window covers the given
// day. Both bounds are inclusive and compared at date granularity.
func (p *Promotion) ActiveOn(day time.Time) bool {
	date := truncateToDate(day)
	if p.StartDate != nil && date.Before(truncateToDate(*p.StartDate)) {
		return false
	}
	if p.EndDate != nil && date.After(truncateToDate(*p.EndDate)) {
		return false
	}

	return true
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DiscountFor computes the nominal (uncapped) discount this promotion grants
// against the given order total, rounded half-up to the currency minor unit.
func (p *Promotion) DiscountFor(total decimal.Decimal) decimal.Decimal {
	switch p.DiscountType {
	case DiscountTypePercent:
		return total.Mul(p.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountTypeFixed:
		return p.DiscountValue.Round(2)
	default:
		return decimal.Zero
	}
}
