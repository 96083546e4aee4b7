package impl

import (
	"context"
	"testing"
	"time"

	"brewhub/config"
	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	mockRepo "brewhub/internal/mocks/repository"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderTestConfig() *config.Config {
	cfg := &config.Config{
		Loyalty: &config.LoyaltyConfig{
			EarnPointsPerCurrencyUnit: 1,
			RedeemCurrencyPerPoint:    "0.01",
		},
		Orders:  &config.OrdersConfig{RecentLimit: 50},
		Reports: &config.ReportsConfig{TopLimit: 10},
	}

	return cfg
}

type orderServiceFixture struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.StubTransactionManager
	stores    *mockRepo.MockStoreRepository
	employees *mockRepo.MockEmployeeRepository
	customers *mockRepo.MockCustomerRepository
	products  *mockRepo.MockProductRepository
	orders    *mockRepo.MockOrderRepository
	promos    *mockRepo.MockPromotionRepository
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	f := &orderServiceFixture{
		stores:    mockRepo.NewMockStoreRepository(t),
		employees: mockRepo.NewMockEmployeeRepository(t),
		customers: mockRepo.NewMockCustomerRepository(t),
		products:  mockRepo.NewMockProductRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		promos:    mockRepo.NewMockPromotionRepository(t),
	}
	f.txManager = &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			Stores:    f.stores,
			Employees: f.employees,
			Customers: f.customers,
			Products:  f.products,
			Orders:    f.orders,
		},
	}
	f.service = NewOrderService(f.txManager, f.orders, f.promos, orderTestConfig())

	return f
}

func (f *orderServiceFixture) expectReferences(ctx context.Context, employeeID, storeID uuid.UUID) {
	f.employees.On("FindByID", ctx, employeeID).Return(&entity.Employee{ID: employeeID}, nil)
	f.stores.On("FindByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
}

func TestOrderService_ProcessOrder_GuestOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	employeeID := uuid.New()
	storeID := uuid.New()
	latte := &entity.Product{ID: uuid.New(), Name: "Latte", Price: decimal.RequireFromString("3.00"), StockQuantity: 10}
	beans := &entity.Product{ID: uuid.New(), Name: "House Beans", Price: decimal.RequireFromString("5.00"), StockQuantity: 4}

	cart := entity.NewCart()
	cart.Add(latte.ID, 2)
	cart.Add(beans.ID, 1)

	f.expectReferences(ctx, employeeID, storeID)
	f.products.On("FindByID", ctx, latte.ID).Return(latte, nil)
	f.products.On("FindByID", ctx, beans.ID).Return(beans, nil)
	f.orders.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = uuid.New()
		}).
		Return(nil)
	f.products.On("DecrementStock", ctx, latte.ID, 2).Return(nil)
	f.products.On("DecrementStock", ctx, beans.ID, 1).Return(nil)

	out, err := f.service.ProcessOrder(ctx, usecase.ProcessOrderInput{
		Cart:           cart,
		EmployeeID:     employeeID,
		StoreID:        storeID,
		PointsToRedeem: 25,
	})
	require.NoError(t, err)

	order := out.Order
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("11.00")), "total was %s", order.TotalAmount)
	assert.Nil(t, order.CustomerID)
	assert.Zero(t, order.PointsEarned)
	assert.Zero(t, order.PointsRedeemed, "redemption is ignored for guest orders")
	assert.Len(t, order.Items, 2)
	for _, item := range order.Items {
		if item.ProductID == latte.ID {
			assert.True(t, item.PriceAtTimeOfOrder.Equal(latte.Price))
			assert.Equal(t, 2, item.Quantity)
		}
	}
	assert.Equal(t, 0, cart.Len(), "cart should be cleared after commit")
	assert.Equal(t, 1, f.txManager.Executions)
	assert.Equal(t, 0, f.txManager.Rollbacks)
}

func TestOrderService_ProcessOrder_MemberRedemption(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	employeeID := uuid.New()
	storeID := uuid.New()
	customerID := uuid.New()
	mocha := &entity.Product{ID: uuid.New(), Name: "Mocha", Price: decimal.RequireFromString("11.00"), StockQuantity: 5}

	cart := entity.NewCart()
	cart.Add(mocha.ID, 1)

	f.expectReferences(ctx, employeeID, storeID)
	f.products.On("FindByID", ctx, mocha.ID).Return(mocha, nil)
	// 100 points at 0.01 each knock a dollar off the 11.00 subtotal.
	f.customers.On("RedeemPoints", ctx, customerID, 100).Return(nil)
	f.orders.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	// Points accrue on the post-redemption total of 10.00.
	f.customers.On("EarnPoints", ctx, customerID, 10).Return(nil)
	f.products.On("DecrementStock", ctx, mocha.ID, 1).Return(nil)

	out, err := f.service.ProcessOrder(ctx, usecase.ProcessOrderInput{
		Cart:           cart,
		CustomerID:     &customerID,
		EmployeeID:     employeeID,
		StoreID:        storeID,
		PointsToRedeem: 100,
	})
	require.NoError(t, err)

	assert.True(t, out.Order.TotalAmount.Equal(decimal.RequireFromString("10.00")), "total was %s", out.Order.TotalAmount)
	assert.Equal(t, 10, out.Order.PointsEarned)
	assert.Equal(t, 100, out.Order.PointsRedeemed)
}

func TestOrderService_ProcessOrder_InsufficientPointsRollsBack(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	employeeID := uuid.New()
	storeID := uuid.New()
	customerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Price: decimal.RequireFromString("4.50"), StockQuantity: 3}

	cart := entity.NewCart()
	cart.Add(product.ID, 1)

	f.expectReferences(ctx, employeeID, storeID)
	f.products.On("FindByID", ctx, product.ID).Return(product, nil)
	f.customers.On("RedeemPoints", ctx, customerID, 500).Return(repository.ErrInsufficientPoints)

	_, err := f.service.ProcessOrder(ctx, usecase.ProcessOrderInput{
		Cart:           cart,
		CustomerID:     &customerID,
		EmployeeID:     employeeID,
		StoreID:        storeID,
		PointsToRedeem: 500,
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
	assert.Equal(t, 1, f.txManager.Rollbacks)
	assert.Equal(t, 1, cart.Len(), "cart survives a failed commit")
}

func TestOrderService_ProcessOrder_InsufficientStockAtCommit(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	employeeID := uuid.New()
	storeID := uuid.New()
	// Stock dropped to 1 between cart admission and commit.
	product := &entity.Product{ID: uuid.New(), Name: "Croissant", Price: decimal.RequireFromString("2.75"), StockQuantity: 1}

	cart := entity.NewCart()
	cart.Add(product.ID, 3)

	f.expectReferences(ctx, employeeID, storeID)
	f.products.On("FindByID", ctx, product.ID).Return(product, nil)

	_, err := f.service.ProcessOrder(ctx, usecase.ProcessOrderInput{
		Cart:       cart,
		EmployeeID: employeeID,
		StoreID:    storeID,
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Equal(t, 1, f.txManager.Rollbacks)
}

func TestOrderService_ProcessOrder_InputValidation(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	_, err := f.service.ProcessOrder(ctx, usecase.ProcessOrderInput{Cart: entity.NewCart()})
	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	cart := entity.NewCart()
	cart.Add(uuid.New(), 1)

	_, err = f.service.ProcessOrder(ctx, usecase.ProcessOrderInput{
		Cart:           cart,
		CustomerID:     &customerID,
		PointsToRedeem: -1,
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Equal(t, 0, f.txManager.Executions, "validation failures never open a transaction")
}

func TestOrderService_ApplyPromotions_SequentialCapping(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	orderID := uuid.New()
	order := &entity.Order{ID: orderID, TotalAmount: decimal.RequireFromString("10.00")}

	percentOff := &entity.Promotion{
		ID:            uuid.New(),
		Name:          "Happy Hour 20%",
		DiscountType:  entity.DiscountTypePercent,
		DiscountValue: decimal.RequireFromString("20"),
	}
	threeOff := &entity.Promotion{
		ID:            uuid.New(),
		Name:          "Three Dollars Off",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: decimal.RequireFromString("3.00"),
	}

	f.orders.On("FindByID", ctx, orderID).Return(order, nil)
	f.promos.On("FindByID", ctx, percentOff.ID).Return(percentOff, nil)
	f.promos.On("FindByID", ctx, threeOff.ID).Return(threeOff, nil)
	f.orders.On("RecordAppliedPromotion", ctx, mock.AnythingOfType("*entity.AppliedPromotion")).Return(nil).Times(2)
	f.orders.On("DeductFromTotal", ctx, orderID, mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.RequireFromString("5.00"))
	})).Return(nil)

	out, err := f.service.ApplyPromotions(ctx, usecase.ApplyPromotionsInput{
		OrderID:      orderID,
		PromotionIDs: []uuid.UUID{percentOff.ID, threeOff.ID},
	})
	require.NoError(t, err)

	require.Len(t, out.Applied, 2)
	assert.True(t, out.Applied[0].Discount.Equal(decimal.RequireFromString("2.00")), "20%% of 10.00")
	assert.True(t, out.Applied[1].Discount.Equal(decimal.RequireFromString("3.00")))
	assert.True(t, out.TotalDiscount.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, out.FinalTotal.Equal(decimal.RequireFromString("5.00")))
	assert.Empty(t, out.Failed)
}

func TestOrderService_ApplyPromotions_NeverExceedsTotal(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	orderID := uuid.New()
	order := &entity.Order{ID: orderID, TotalAmount: decimal.RequireFromString("10.00")}

	bigFixed := &entity.Promotion{
		ID:            uuid.New(),
		Name:          "Fifty Off",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: decimal.RequireFromString("50.00"),
	}
	leftover := &entity.Promotion{
		ID:            uuid.New(),
		Name:          "Ten Percent",
		DiscountType:  entity.DiscountTypePercent,
		DiscountValue: decimal.RequireFromString("10"),
	}

	f.orders.On("FindByID", ctx, orderID).Return(order, nil)
	f.promos.On("FindByID", ctx, bigFixed.ID).Return(bigFixed, nil)
	f.promos.On("FindByID", ctx, leftover.ID).Return(leftover, nil)
	f.orders.On("RecordAppliedPromotion", ctx, mock.MatchedBy(func(applied *entity.AppliedPromotion) bool {
		return applied.DiscountAmountApplied.Equal(decimal.RequireFromString("10.00"))
	})).Return(nil)
	f.orders.On("DeductFromTotal", ctx, orderID, mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.RequireFromString("10.00"))
	})).Return(nil)

	out, err := f.service.ApplyPromotions(ctx, usecase.ApplyPromotionsInput{
		OrderID:      orderID,
		PromotionIDs: []uuid.UUID{bigFixed.ID, leftover.ID},
	})
	require.NoError(t, err)

	// The fixed discount is capped at the full total; the second promotion
	// finds nothing left to discount and is skipped without a record.
	require.Len(t, out.Applied, 1)
	assert.True(t, out.Applied[0].Discount.Equal(decimal.RequireFromString("10.00")))
	assert.Empty(t, out.Failed)
	assert.True(t, out.FinalTotal.IsZero(), "final total was %s", out.FinalTotal)
}

func TestOrderService_ApplyPromotions_FailureIsolation(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	orderID := uuid.New()
	order := &entity.Order{ID: orderID, TotalAmount: decimal.RequireFromString("20.00")}

	missingID := uuid.New()
	expired := &entity.Promotion{
		ID:            uuid.New(),
		Name:          "Last Summer",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: decimal.RequireFromString("5.00"),
		EndDate:       timePtr(time.Now().AddDate(-1, 0, 0)),
	}
	unrecordable := &entity.Promotion{
		ID:            uuid.New(),
		Name:          "Flash Sale",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: decimal.RequireFromString("6.00"),
	}
	working := &entity.Promotion{
		ID:            uuid.New(),
		Name:          "Member Monday",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: decimal.RequireFromString("4.00"),
	}

	f.promos.On("FindByID", ctx, missingID).Return(nil, repository.ErrPromotionNotFound)
	f.promos.On("FindByID", ctx, expired.ID).Return(expired, nil)
	f.promos.On("FindByID", ctx, unrecordable.ID).Return(unrecordable, nil)
	f.promos.On("FindByID", ctx, working.ID).Return(working, nil)
	f.orders.On("FindByID", ctx, orderID).Return(order, nil)
	f.orders.On("RecordAppliedPromotion", ctx, mock.MatchedBy(func(applied *entity.AppliedPromotion) bool {
		return applied.PromotionID == unrecordable.ID
	})).Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "applied_promotions"))
	f.orders.On("RecordAppliedPromotion", ctx, mock.MatchedBy(func(applied *entity.AppliedPromotion) bool {
		return applied.PromotionID == working.ID
	})).Return(nil)
	f.orders.On("DeductFromTotal", ctx, orderID, mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.RequireFromString("4.00"))
	})).Return(nil)

	out, err := f.service.ApplyPromotions(ctx, usecase.ApplyPromotionsInput{
		OrderID:      orderID,
		PromotionIDs: []uuid.UUID{missingID, expired.ID, unrecordable.ID, working.ID},
	})
	require.NoError(t, err)

	// Only the promotion whose audit row landed counts toward the deduction;
	// the unrecordable one is reported and skipped, not retried and not summed.
	require.Len(t, out.Applied, 1)
	assert.Equal(t, working.ID, out.Applied[0].PromotionID)
	require.Len(t, out.Failed, 3)
	assert.True(t, out.TotalDiscount.Equal(decimal.RequireFromString("4.00")))
	assert.True(t, out.FinalTotal.Equal(decimal.RequireFromString("16.00")))
}

func TestOrderService_ApplyPromotions_RejectsLoyaltyTier(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	orderID := uuid.New()
	order := &entity.Order{ID: orderID, TotalAmount: decimal.RequireFromString("10.00")}

	threshold := 500
	tiered := &entity.Promotion{
		ID:             uuid.New(),
		Name:           "Gold Member Reward",
		DiscountType:   entity.DiscountTypeFixed,
		DiscountValue:  decimal.RequireFromString("5.00"),
		RequiredPoints: &threshold,
	}

	f.orders.On("FindByID", ctx, orderID).Return(order, nil)
	f.promos.On("FindByID", ctx, tiered.ID).Return(tiered, nil)

	out, err := f.service.ApplyPromotions(ctx, usecase.ApplyPromotionsInput{
		OrderID:      orderID,
		PromotionIDs: []uuid.UUID{tiered.ID},
	})
	require.NoError(t, err)

	// Point-gated promotions never enter the general discount pass, no matter
	// how the caller obtained the ID.
	assert.Empty(t, out.Applied)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, tiered.ID, out.Failed[0].PromotionID)
	assert.True(t, out.TotalDiscount.IsZero())
	assert.True(t, out.FinalTotal.Equal(order.TotalAmount))
	f.orders.AssertNotCalled(t, "RecordAppliedPromotion", ctx, mock.Anything)
	f.orders.AssertNotCalled(t, "DeductFromTotal", ctx, orderID, mock.Anything)
}

func TestOrderService_ApplyPromotions_OrderNotFound(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orders.On("FindByID", ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.ApplyPromotions(ctx, usecase.ApplyPromotionsInput{OrderID: orderID})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_GetOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	orderID := uuid.New()
	order := &entity.Order{ID: orderID, TotalAmount: decimal.RequireFromString("7.25")}
	items := []*repository.OrderItemDetail{{ProductName: "Flat White", Quantity: 1, PriceAtTimeOfOrder: decimal.RequireFromString("7.25")}}

	f.orders.On("FindByID", ctx, orderID).Return(order, nil)
	f.orders.On("ListItems", ctx, orderID).Return(items, nil)
	f.orders.On("ListAppliedPromotions", ctx, orderID).Return([]*entity.AppliedPromotion{}, nil)

	detail, err := f.service.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, order, detail.Order)
	assert.Equal(t, items, detail.Items)
	assert.Empty(t, detail.Promotions)
}

func TestOrderService_ListRecentOrders_UsesConfiguredLimit(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	summaries := []*repository.OrderSummary{{OrderID: uuid.New(), StoreName: "Downtown"}}
	f.orders.On("ListRecent", ctx, 50).Return(summaries, nil)

	got, err := f.service.ListRecentOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
