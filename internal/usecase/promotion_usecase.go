package usecase

import (
	"context"
	"time"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionInput carries the writable fields of a promotion. Nil dates leave
// the corresponding validity bound open; a nil RequiredPoints marks a general
// promotion selectable at order creation.
type PromotionInput struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	StartDate      *time.Time      `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
	RequiredPoints *int            `json:"required_points"`
}

// PromotionUsecase defines the promotion management use cases.
type PromotionUsecase interface {
	// CreatePromotion registers a new discount campaign.
	CreatePromotion(ctx context.Context, input PromotionInput) (*entity.Promotion, error)

	// GetPromotion retrieves one promotion.
	GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// ListPromotions retrieves all promotions.
	ListPromotions(ctx context.Context) ([]*entity.Promotion, error)

	// ListActivePromotions retrieves the general promotions currently
	// selectable in the order flow.
	ListActivePromotions(ctx context.Context) ([]*entity.Promotion, error)

	// UpdatePromotion modifies an existing promotion.
	UpdatePromotion(ctx context.Context, id uuid.UUID, input PromotionInput) (*entity.Promotion, error)

	// DeletePromotion removes a promotion. Promotions applied to past orders
	// cannot be deleted.
	DeletePromotion(ctx context.Context, id uuid.UUID) error
}
