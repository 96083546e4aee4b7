package impl

import (
	"context"
	"testing"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	mockRepo "brewhub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockProductRepo)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Espresso", Price: decimal.RequireFromString("2.50"), StockQuantity: 5}
	cart := entity.NewCart()

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	require.NoError(t, service.AddItem(ctx, cart, product.ID, 3))
	assert.Equal(t, 3, cart.Quantity(product.ID))

	// A second add of the same product is checked against the combined quantity.
	require.NoError(t, service.AddItem(ctx, cart, product.ID, 2))
	assert.Equal(t, 5, cart.Quantity(product.ID))
}

func TestCartService_AddItem_RejectsOverStock(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockProductRepo)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Espresso", Price: decimal.RequireFromString("2.50"), StockQuantity: 4}
	cart := entity.NewCart()
	cart.Add(product.ID, 3)

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	err := service.AddItem(ctx, cart, product.ID, 2)
	require.ErrorIs(t, err, domainerrors.ErrStockExceeded)
	assert.Equal(t, 3, cart.Quantity(product.ID), "rejected add leaves the cart unchanged")
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockProductRepo)

	ctx := context.Background()
	productID := uuid.New()
	cart := entity.NewCart()

	mockProductRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	err := service.AddItem(ctx, cart, productID, 1)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, 0, cart.Len())
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockProductRepo)

	cart := entity.NewCart()

	err := service.AddItem(context.Background(), cart, uuid.New(), 0)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_RemoveItem(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockProductRepo)

	ctx := context.Background()
	productID := uuid.New()
	cart := entity.NewCart()
	cart.Add(productID, 2)

	require.NoError(t, service.RemoveItem(ctx, cart, productID))
	assert.Equal(t, 0, cart.Len())

	err := service.RemoveItem(ctx, cart, productID)
	require.ErrorIs(t, err, domainerrors.ErrItemNotInCart)
}

func TestCartService_View(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockProductRepo)

	ctx := context.Background()
	latte := &entity.Product{ID: uuid.New(), Name: "Latte", Price: decimal.RequireFromString("3.00"), StockQuantity: 10}
	beans := &entity.Product{ID: uuid.New(), Name: "House Beans", Price: decimal.RequireFromString("5.00"), StockQuantity: 4}

	cart := entity.NewCart()
	cart.Add(latte.ID, 2)
	cart.Add(beans.ID, 1)

	mockProductRepo.On("FindByID", ctx, latte.ID).Return(latte, nil)
	mockProductRepo.On("FindByID", ctx, beans.ID).Return(beans, nil)

	view, err := service.View(ctx, cart)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.True(t, view.Subtotal.Equal(decimal.RequireFromString("11.00")), "subtotal was %s", view.Subtotal)

	for _, line := range view.Lines {
		if line.ProductID == latte.ID {
			assert.True(t, line.LineTotal.Equal(decimal.RequireFromString("6.00")))
		}
	}
}

func TestCartService_View_EmptyCart(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockProductRepo)

	view, err := service.View(context.Background(), entity.NewCart())
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Subtotal.IsZero())
}
