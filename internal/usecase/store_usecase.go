package usecase

import (
	"context"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreInput carries the writable fields of a store.
type StoreInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// StoreUsecase defines the store management use cases.
type StoreUsecase interface {
	// CreateStore registers a new retail location.
	CreateStore(ctx context.Context, input StoreInput) (*entity.Store, error)

	// GetStore retrieves one store.
	GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// ListStores retrieves all stores ordered by name.
	ListStores(ctx context.Context) ([]*entity.Store, error)

	// UpdateStore modifies an existing store.
	UpdateStore(ctx context.Context, id uuid.UUID, input StoreInput) (*entity.Store, error)

	// DeleteStore removes a store. Employees assigned to it become
	// unassigned; stores referenced by past orders cannot be deleted.
	DeleteStore(ctx context.Context, id uuid.UUID) error
}
