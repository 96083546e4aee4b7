// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// FindByID retrieves a store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// List retrieves all stores ordered by name.
func (repo *storeRepository) List(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// Create persists a new store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	// Update the entity with generated values
	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Update modifies an existing store.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]interface{}{
			"name":     store.Name,
			"address":  store.Address,
			"city":     store.City,
			"state":    store.State,
			"zip_code": store.ZipCode,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// Delete removes a store. Employee assignments are nullified by the schema;
// past orders referencing the store restrict the delete.
func (repo *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrDeleteRestricted.WrapMessage("store is referenced by past orders")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// toStoreDomain converts a persistence model to a domain entity.
func toStoreDomain(storeM *model.StoreModel) *entity.Store {
	return &entity.Store{
		ID:        storeM.ID,
		Name:      storeM.Name,
		Address:   storeM.Address,
		City:      storeM.City,
		State:     storeM.State,
		ZipCode:   storeM.ZipCode,
		CreatedAt: storeM.CreatedAt,
		UpdatedAt: storeM.UpdatedAt,
	}
}

// fromStoreDomain converts a domain entity to a persistence model.
func fromStoreDomain(store *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:      store.ID,
		Name:    store.Name,
		Address: store.Address,
		City:    store.City,
		State:   store.State,
		ZipCode: store.ZipCode,
	}
}
