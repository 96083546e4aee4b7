package ledger

import (
	"context"
	"testing"

	"brewhub/internal/domain/entity"
	"brewhub/internal/domain/repository"
	mockRepo "brewhub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoyalty(customers repository.CustomerRepository) *Loyalty {
	return NewLoyalty(customers, 1, decimal.RequireFromString("0.01"))
}

func TestLoyalty_Balance(t *testing.T) {
	customers := mockRepo.NewMockCustomerRepository(t)
	ctx := context.Background()
	customerID := uuid.New()

	customers.On("FindByID", ctx, customerID).
		Return(&entity.Customer{ID: customerID, LoyaltyPoints: 500}, nil)

	balance, err := newLoyalty(customers).Balance(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, 500, balance)
}

func TestLoyalty_Redeem_DelegatesGuardedUpdate(t *testing.T) {
	customers := mockRepo.NewMockCustomerRepository(t)
	ctx := context.Background()
	customerID := uuid.New()

	customers.On("RedeemPoints", ctx, customerID, 100).Return(nil)

	require.NoError(t, newLoyalty(customers).Redeem(ctx, customerID, 100))
}

func TestLoyalty_Redeem_InsufficientPoints(t *testing.T) {
	customers := mockRepo.NewMockCustomerRepository(t)
	ctx := context.Background()
	customerID := uuid.New()

	customers.On("RedeemPoints", ctx, customerID, 600).
		Return(repository.ErrInsufficientPoints)

	err := newLoyalty(customers).Redeem(ctx, customerID, 600)
	assert.ErrorIs(t, err, repository.ErrInsufficientPoints)
}

func TestLoyalty_Redeem_RejectsNonPositive(t *testing.T) {
	customers := mockRepo.NewMockCustomerRepository(t)

	err := newLoyalty(customers).Redeem(context.Background(), uuid.New(), 0)
	assert.Error(t, err)
}

func TestLoyalty_Earn_ZeroIsNoop(t *testing.T) {
	customers := mockRepo.NewMockCustomerRepository(t)

	require.NoError(t, newLoyalty(customers).Earn(context.Background(), uuid.New(), 0))
}

func TestLoyalty_RedeemValue(t *testing.T) {
	loyalty := newLoyalty(mockRepo.NewMockCustomerRepository(t))

	assert.True(t, decimal.RequireFromString("1.00").Equal(loyalty.RedeemValue(100)))
}

func TestLoyalty_PointsEarned_FlooredPerCurrencyUnit(t *testing.T) {
	loyalty := newLoyalty(mockRepo.NewMockCustomerRepository(t))

	assert.Equal(t, 10, loyalty.PointsEarned(decimal.RequireFromString("10.00")))
	assert.Equal(t, 10, loyalty.PointsEarned(decimal.RequireFromString("10.99")))
	assert.Equal(t, 0, loyalty.PointsEarned(decimal.RequireFromString("0.50")))
	assert.Equal(t, 0, loyalty.PointsEarned(decimal.RequireFromString("-1.00")))
}

func TestInventory_Decrement_InsufficientStock(t *testing.T) {
	products := mockRepo.NewMockProductRepository(t)
	ctx := context.Background()
	productID := uuid.New()

	products.On("DecrementStock", ctx, productID, 5).
		Return(repository.ErrInsufficientStock)

	err := NewInventory(products).Decrement(ctx, productID, 5)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
}

func TestInventory_Available(t *testing.T) {
	products := mockRepo.NewMockProductRepository(t)
	ctx := context.Background()
	productID := uuid.New()

	products.On("FindByID", ctx, productID).
		Return(&entity.Product{ID: productID, StockQuantity: 42}, nil)

	available, err := NewInventory(products).Available(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 42, available)
}
