package usecase

import (
	"context"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}

// ProductUsecase defines the catalog management use cases.
type ProductUsecase interface {
	// CreateProduct adds a new catalog item.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// GetProduct retrieves one product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves all products ordered by category and name.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// UpdateProduct modifies an existing product, including restocking.
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. Products referenced by past order
	// items cannot be deleted.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
