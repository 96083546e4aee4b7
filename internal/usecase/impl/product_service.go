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

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service instance.
func NewProductService(productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
	}
}

func validateProductInput(input usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if input.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WrapMessage("price cannot be negative")
	}
	if input.StockQuantity < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("stock quantity cannot be negative")
	}

	return nil
}

// CreateProduct adds a new catalog item.
func (s *productService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:          input.Name,
		Category:      input.Category,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves one product.
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("product does not exist")
		}

		return nil, err
	}

	return product, nil
}

// ListProducts retrieves all products ordered by category and name.
func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return s.productRepo.List(ctx)
}

// UpdateProduct modifies an existing product, including restocking.
func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:            id,
		Name:          input.Name,
		Category:      input.Category,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("product does not exist")
		}

		return nil, err
	}

	return s.productRepo.FindByID(ctx, id)
}

// DeleteProduct removes a product.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("product does not exist")
		}

		return err
	}

	return nil
}
