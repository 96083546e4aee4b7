package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brewhub/config"
	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/ledger"
	"brewhub/internal/domain/repository"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	promotionRepo repository.PromotionRepository
	earnRate      int64
	redeemRate    decimal.Decimal
	recentLimit   int
	now           func() time.Time
}

// NewOrderService creates a new order service instance.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	promotionRepo repository.PromotionRepository,
	cfg *config.Config,
) usecase.OrderUsecase {
	return &orderService{
		txManager:     txManager,
		orderRepo:     orderRepo,
		promotionRepo: promotionRepo,
		earnRate:      cfg.Loyalty.EarnPointsPerCurrencyUnit,
		redeemRate:    cfg.Loyalty.RedeemRate(),
		recentLimit:   cfg.Orders.RecentLimit,
		now:           time.Now,
	}
}

// ProcessOrder commits the cart as an order inside a single transaction.
// The sequence is: validate references, re-check and price every cart line,
// redeem loyalty points, persist the order with snapshotted prices, award
// earned points, then decrement stock line by line. Any failure rolls the
// whole commit back, leaving stock and point balances untouched.
func (s *orderService) ProcessOrder(ctx context.Context, input usecase.ProcessOrderInput) (*usecase.ProcessOrderOutput, error) {
	if input.Cart == nil || input.Cart.Len() == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if input.PointsToRedeem < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("points to redeem cannot be negative")
	}
	if input.CustomerID == nil {
		// Guests carry no balance to redeem against.
		input.PointsToRedeem = 0
	}

	var committed *entity.Order

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeRepo := repoFactory.EmployeeRepo()
		storeRepo := repoFactory.StoreRepo()
		productRepo := repoFactory.ProductRepo()
		loyalty := ledger.NewLoyalty(repoFactory.CustomerRepo(), s.earnRate, s.redeemRate)
		inventory := ledger.NewInventory(productRepo)

		if _, err := employeeRepo.FindByID(ctx, input.EmployeeID); err != nil {
			if errors.Is(err, repository.ErrEmployeeNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("employee does not exist")
			}

			return err
		}
		if _, err := storeRepo.FindByID(ctx, input.StoreID); err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("store does not exist")
			}

			return err
		}

		// Price and re-check every line against live stock. Prices read here
		// become the immutable snapshots on the order items.
		productIDs := input.Cart.ProductIDs()
		items := make([]*entity.OrderItem, 0, len(productIDs))
		subtotal := decimal.Zero
		for _, productID := range productIDs {
			product, err := productRepo.FindByID(ctx, productID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrNotFound.WrapMessage("cart references a product that no longer exists")
				}

				return err
			}

			quantity := input.Cart.Quantity(productID)
			if quantity > product.StockQuantity {
				return domainerrors.ErrInsufficientStock.WithDetails(
					fmt.Sprintf("requested %d of %q, only %d in stock", quantity, product.Name, product.StockQuantity))
			}

			items = append(items, &entity.OrderItem{
				ProductID:          productID,
				Quantity:           quantity,
				PriceAtTimeOfOrder: product.Price,
			})
			subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
		}

		total := subtotal
		if input.PointsToRedeem > 0 {
			if err := loyalty.Redeem(ctx, *input.CustomerID, input.PointsToRedeem); err != nil {
				if errors.Is(err, repository.ErrInsufficientPoints) {
					return domainerrors.ErrInsufficientPoints
				}
				if errors.Is(err, repository.ErrCustomerNotFound) {
					return domainerrors.ErrNotFound.WrapMessage("customer does not exist")
				}

				return err
			}

			total = total.Sub(loyalty.RedeemValue(input.PointsToRedeem))
			if total.IsNegative() {
				total = decimal.Zero
			}
		}

		// Points accrue on the amount actually paid, after redemption.
		pointsEarned := 0
		if input.CustomerID != nil {
			pointsEarned = loyalty.PointsEarned(total)
		}

		order := &entity.Order{
			CustomerID:     input.CustomerID,
			EmployeeID:     input.EmployeeID,
			StoreID:        input.StoreID,
			OrderTimestamp: s.now(),
			TotalAmount:    total,
			PointsEarned:   pointsEarned,
			PointsRedeemed: input.PointsToRedeem,
			Items:          items,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return err
		}

		if pointsEarned > 0 {
			if err := loyalty.Earn(ctx, *input.CustomerID, pointsEarned); err != nil {
				return err
			}
		}

		for _, item := range items {
			if err := inventory.Decrement(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock
				}

				return err
			}
		}

		committed = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	input.Cart.Clear()

	return &usecase.ProcessOrderOutput{Order: committed}, nil
}

// ApplyPromotions runs one sequential, best-effort discount pass over a
// committed order. Percentage discounts are computed against the order total
// as it stood at the start of the pass; each discount is then capped at
// whatever total remains, so the combined discount can never exceed the
// order total. A failing promotion is reported and skipped, it never aborts
// the pass.
func (s *orderService) ApplyPromotions(ctx context.Context, input usecase.ApplyPromotionsInput) (*usecase.ApplyPromotionsOutput, error) {
	order, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("order does not exist")
		}

		return nil, err
	}

	out := &usecase.ApplyPromotionsOutput{
		Applied:       make([]*usecase.AppliedPromotionResult, 0, len(input.PromotionIDs)),
		Failed:        make([]*usecase.PromotionFailure, 0),
		TotalDiscount: decimal.Zero,
	}

	originalTotal := order.TotalAmount
	remaining := order.TotalAmount
	today := s.now()

	for _, promotionID := range input.PromotionIDs {
		promotion, err := s.promotionRepo.FindByID(ctx, promotionID)
		if err != nil {
			reason := "promotion lookup failed"
			if errors.Is(err, repository.ErrPromotionNotFound) {
				reason = "promotion does not exist"
			}
			out.Failed = append(out.Failed, &usecase.PromotionFailure{PromotionID: promotionID, Reason: reason})

			continue
		}

		if !promotion.IsGeneral() {
			out.Failed = append(out.Failed, &usecase.PromotionFailure{PromotionID: promotionID, Reason: "promotion requires loyalty points"})

			continue
		}

		if !promotion.ActiveOn(today) {
			out.Failed = append(out.Failed, &usecase.PromotionFailure{PromotionID: promotionID, Reason: "promotion is not active today"})

			continue
		}

		discount := promotion.DiscountFor(originalTotal)
		if discount.GreaterThan(remaining) {
			discount = remaining
		}
		// A discount capped to nothing is skipped without an audit row.
		if !discount.IsPositive() {
			continue
		}

		applied := &entity.AppliedPromotion{
			OrderID:               order.ID,
			PromotionID:           promotion.ID,
			DiscountAmountApplied: discount,
		}
		if err := s.orderRepo.RecordAppliedPromotion(ctx, applied); err != nil {
			out.Failed = append(out.Failed, &usecase.PromotionFailure{PromotionID: promotionID, Reason: "failed to record promotion"})

			continue
		}

		remaining = remaining.Sub(discount)
		out.TotalDiscount = out.TotalDiscount.Add(discount)
		out.Applied = append(out.Applied, &usecase.AppliedPromotionResult{
			PromotionID: promotion.ID,
			Name:        promotion.Name,
			Discount:    discount,
		})
	}

	if out.TotalDiscount.IsPositive() {
		if err := s.orderRepo.DeductFromTotal(ctx, order.ID, out.TotalDiscount); err != nil {
			return nil, err
		}
	}

	out.FinalTotal = originalTotal.Sub(out.TotalDiscount)

	return out, nil
}

// GetOrder retrieves one order with its items and promotion audit trail.
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*usecase.OrderDetail, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("order does not exist")
		}

		return nil, err
	}

	items, err := s.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	promotions, err := s.orderRepo.ListAppliedPromotions(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &usecase.OrderDetail{
		Order:      order,
		Items:      items,
		Promotions: promotions,
	}, nil
}

// ListRecentOrders retrieves the newest orders with display names joined.
func (s *orderService) ListRecentOrders(ctx context.Context) ([]*repository.OrderSummary, error) {
	return s.orderRepo.ListRecent(ctx, s.recentLimit)
}
