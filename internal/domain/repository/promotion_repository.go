package repository

import (
	"context"
	"errors"
	"time"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPromotionNotFound is returned when a promotion is not found.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository defines the standard operations for promotion persistence.
type PromotionRepository interface {
	// FindByID retrieves a single promotion by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// List retrieves all promotions, most recently ending first.
	List(ctx context.Context) ([]*entity.Promotion, error)

	// ListActiveGeneral retrieves promotions selectable in the order-creation
	// flow: no required-points threshold and a validity window covering day.
	ListActiveGeneral(ctx context.Context, day time.Time) ([]*entity.Promotion, error)

	// Create persists a new promotion.
	Create(ctx context.Context, promotion *entity.Promotion) error

	// Update modifies an existing promotion.
	Update(ctx context.Context, promotion *entity.Promotion) error

	// Delete removes a promotion. Applied-promotion audit rows referencing it
	// restrict the delete.
	Delete(ctx context.Context, id uuid.UUID) error
}
