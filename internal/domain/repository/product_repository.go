package repository

import (
	"context"
	"errors"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned by DecrementStock when the decrement
	// would drive the stock quantity negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the standard operations for product persistence.
// Stock decrements go through the guarded DecrementStock operation so the
// quantity can never go negative, even under concurrent commits.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves all products ordered by category, name.
	List(ctx context.Context) ([]*entity.Product, error)

	// ListLowStock retrieves products with stock at or below the threshold,
	// lowest stock first.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Past order items referencing the product
	// restrict the delete.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity from the product's stock,
	// failing with ErrInsufficientStock when the remaining stock is too low.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
