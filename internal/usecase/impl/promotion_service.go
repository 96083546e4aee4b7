package impl

import (
	"context"
	"errors"
	"strings"
	"time"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
)

type promotionService struct {
	promotionRepo repository.PromotionRepository
	now           func() time.Time
}

// NewPromotionService creates a new promotion service instance.
func NewPromotionService(promotionRepo repository.PromotionRepository) usecase.PromotionUsecase {
	return &promotionService{
		promotionRepo: promotionRepo,
		now:           time.Now,
	}
}

func validatePromotionInput(input usecase.PromotionInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("promotion name is required")
	}
	if !entity.DiscountType(input.DiscountType).Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("discount type must be PERCENT or FIXED")
	}
	if !input.DiscountValue.IsPositive() {
		return domainerrors.ErrValidationFailed.WrapMessage("discount value must be positive")
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return domainerrors.ErrValidationFailed.WrapMessage("end date cannot precede start date")
	}
	if input.RequiredPoints != nil && *input.RequiredPoints < 1 {
		return domainerrors.ErrValidationFailed.WrapMessage("required points must be at least 1 when set")
	}

	return nil
}

// CreatePromotion registers a new discount campaign.
func (s *promotionService) CreatePromotion(ctx context.Context, input usecase.PromotionInput) (*entity.Promotion, error) {
	if err := validatePromotionInput(input); err != nil {
		return nil, err
	}

	promotion := &entity.Promotion{
		Name:           input.Name,
		Description:    input.Description,
		DiscountType:   entity.DiscountType(input.DiscountType),
		DiscountValue:  input.DiscountValue,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		RequiredPoints: input.RequiredPoints,
	}
	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	return promotion, nil
}

// GetPromotion retrieves one promotion.
func (s *promotionService) GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("promotion does not exist")
		}

		return nil, err
	}

	return promotion, nil
}

// ListPromotions retrieves all promotions.
func (s *promotionService) ListPromotions(ctx context.Context) ([]*entity.Promotion, error) {
	return s.promotionRepo.List(ctx)
}

// ListActivePromotions retrieves the general promotions currently selectable
// in the order flow.
func (s *promotionService) ListActivePromotions(ctx context.Context) ([]*entity.Promotion, error) {
	return s.promotionRepo.ListActiveGeneral(ctx, s.now())
}

// UpdatePromotion modifies an existing promotion.
func (s *promotionService) UpdatePromotion(ctx context.Context, id uuid.UUID, input usecase.PromotionInput) (*entity.Promotion, error) {
	if err := validatePromotionInput(input); err != nil {
		return nil, err
	}

	promotion := &entity.Promotion{
		ID:             id,
		Name:           input.Name,
		Description:    input.Description,
		DiscountType:   entity.DiscountType(input.DiscountType),
		DiscountValue:  input.DiscountValue,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		RequiredPoints: input.RequiredPoints,
	}
	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("promotion does not exist")
		}

		return nil, err
	}

	return s.promotionRepo.FindByID(ctx, id)
}

// DeletePromotion removes a promotion.
func (s *promotionService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("promotion does not exist")
		}

		return err
	}

	return nil
}
