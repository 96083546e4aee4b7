// Package impl contains the concrete implementations of the usecase
// interfaces.
package impl

import (
	"context"
	"errors"
	"fmt"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type cartService struct {
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service instance.
func NewCartService(productRepo repository.ProductRepository) usecase.CartUsecase {
	return &cartService{
		productRepo: productRepo,
	}
}

// AddItem admits quantity of the product into the cart. The admission check
// covers the combined quantity already in the cart, so repeated adds of the
// same product cannot creep past the available stock. A rejected add leaves
// the cart untouched.
func (s *cartService) AddItem(ctx context.Context, cart *entity.Cart, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("product does not exist")
		}

		return err
	}

	requested := cart.Quantity(productID) + quantity
	if requested > product.StockQuantity {
		return domainerrors.ErrStockExceeded.WithDetails(
			fmt.Sprintf("requested %d of %q, only %d in stock", requested, product.Name, product.StockQuantity))
	}

	cart.Add(productID, quantity)

	return nil
}

// RemoveItem removes the product's line from the cart entirely.
func (s *cartService) RemoveItem(_ context.Context, cart *entity.Cart, productID uuid.UUID) error {
	if !cart.Remove(productID) {
		return domainerrors.ErrItemNotInCart
	}

	return nil
}

// View resolves the cart against the live catalog. Products are resolved in
// the cart's stable ID order so the view is deterministic.
func (s *cartService) View(ctx context.Context, cart *entity.Cart) (*usecase.CartView, error) {
	view := &usecase.CartView{
		Lines:    make([]*usecase.CartLine, 0, cart.Len()),
		Subtotal: decimal.Zero,
	}

	for _, productID := range cart.ProductIDs() {
		product, err := s.productRepo.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}

		quantity := cart.Quantity(productID)
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))

		view.Lines = append(view.Lines, &usecase.CartLine{
			ProductID: productID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
			LineTotal: lineTotal,
		})
		view.Subtotal = view.Subtotal.Add(lineTotal)
	}

	return view, nil
}
