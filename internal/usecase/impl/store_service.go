package impl

import (
	"context"
	"errors"
	"strings"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
)

type storeService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new store service instance.
func NewStoreService(storeRepo repository.StoreRepository) usecase.StoreUsecase {
	return &storeService{
		storeRepo: storeRepo,
	}
}

// CreateStore registers a new retail location.
func (s *storeService) CreateStore(ctx context.Context, input usecase.StoreInput) (*entity.Store, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("store name is required")
	}

	store := &entity.Store{
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// GetStore retrieves one store.
func (s *storeService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("store does not exist")
		}

		return nil, err
	}

	return store, nil
}

// ListStores retrieves all stores ordered by name.
func (s *storeService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	return s.storeRepo.List(ctx)
}

// UpdateStore modifies an existing store.
func (s *storeService) UpdateStore(ctx context.Context, id uuid.UUID, input usecase.StoreInput) (*entity.Store, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("store name is required")
	}

	store := &entity.Store{
		ID:      id,
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
	}
	if err := s.storeRepo.Update(ctx, store); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("store does not exist")
		}

		return nil, err
	}

	return s.storeRepo.FindByID(ctx, id)
}

// DeleteStore removes a store.
func (s *storeService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	if err := s.storeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("store does not exist")
		}

		return err
	}

	return nil
}
