// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is a domain-specific error returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// List retrieves all stores ordered by name.
	List(ctx context.Context) ([]*entity.Store, error)

	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// Update modifies an existing store.
	Update(ctx context.Context, store *entity.Store) error

	// Delete removes a store. Past orders referencing the store restrict the
	// delete; employee assignments are nullified instead.
	Delete(ctx context.Context, id uuid.UUID) error
}
