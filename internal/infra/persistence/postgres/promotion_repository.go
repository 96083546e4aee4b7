package postgres

import (
	"context"
	"time"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{
		db: db,
	}
}

// FindByID retrieves a promotion by its unique ID.
func (repo *promotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	var promotionM model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&promotionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion by ID")
	}

	return toPromotionDomain(&promotionM), nil
}

// List retrieves all promotions, most recently ending first. Promotions
// without an end date sort last.
func (repo *promotionRepository) List(ctx context.Context) ([]*entity.Promotion, error) {
	var promotionModels []*model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Order("end_date DESC NULLS LAST, name ASC").
		Find(&promotionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promotionModels))
	for _, promotionM := range promotionModels {
		promotions = append(promotions, toPromotionDomain(promotionM))
	}

	return promotions, nil
}

// ListActiveGeneral retrieves promotions selectable in the order-creation
// flow: no required-points threshold and a validity window covering day.
// Open-ended bounds (NULL dates) always match.
func (repo *promotionRepository) ListActiveGeneral(ctx context.Context, day time.Time) ([]*entity.Promotion, error) {
	var promotionModels []*model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Where("required_points IS NULL").
		Where("start_date IS NULL OR start_date <= ?", day).
		Where("end_date IS NULL OR end_date >= ?", day).
		Order("name ASC").
		Find(&promotionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promotionModels))
	for _, promotionM := range promotionModels {
		promotions = append(promotions, toPromotionDomain(promotionM))
	}

	return promotions, nil
}

// Create persists a new promotion.
func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	promotionM := fromPromotionDomain(promotion)

	if err := repo.db.WithContext(ctx).Create(promotionM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("discount type must be PERCENT or FIXED")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	// Update the entity with generated values
	promotion.ID = promotionM.ID
	promotion.CreatedAt = promotionM.CreatedAt
	promotion.UpdatedAt = promotionM.UpdatedAt

	return nil
}

// Update modifies an existing promotion.
func (repo *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromotionModel{}).
		Where("id = ?", promotion.ID).
		Updates(map[string]interface{}{
			"name":            promotion.Name,
			"description":     promotion.Description,
			"discount_type":   string(promotion.DiscountType),
			"discount_value":  promotion.DiscountValue,
			"start_date":      promotion.StartDate,
			"end_date":        promotion.EndDate,
			"required_points": promotion.RequiredPoints,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("discount type must be PERCENT or FIXED")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// Delete removes a promotion. Applied-promotion audit rows referencing it
// restrict the delete.
func (repo *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PromotionModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrDeleteRestricted.WrapMessage("promotion was applied to past orders")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promotion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// toPromotionDomain converts a persistence model to a domain entity.
func toPromotionDomain(promotionM *model.PromotionModel) *entity.Promotion {
	return &entity.Promotion{
		ID:             promotionM.ID,
		Name:           promotionM.Name,
		Description:    promotionM.Description,
		DiscountType:   entity.DiscountType(promotionM.DiscountType),
		DiscountValue:  promotionM.DiscountValue,
		StartDate:      promotionM.StartDate,
		EndDate:        promotionM.EndDate,
		RequiredPoints: promotionM.RequiredPoints,
		CreatedAt:      promotionM.CreatedAt,
		UpdatedAt:      promotionM.UpdatedAt,
	}
}

// fromPromotionDomain converts a domain entity to a persistence model.
func fromPromotionDomain(promotion *entity.Promotion) *model.PromotionModel {
	return &model.PromotionModel{
		ID:             promotion.ID,
		Name:           promotion.Name,
		Description:    promotion.Description,
		DiscountType:   string(promotion.DiscountType),
		DiscountValue:  promotion.DiscountValue,
		StartDate:      promotion.StartDate,
		EndDate:        promotion.EndDate,
		RequiredPoints: promotion.RequiredPoints,
	}
}
