package postgres

import (
	"context"
	"time"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its items. GORM inserts the
// associated item rows through the Items association. The caller is
// responsible for running this inside a transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references a missing customer, employee, store or product")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order item quantity must be at least one")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListRecent retrieves the newest orders joined with customer, employee and
// store display names. Guest orders produce an empty customer name.
func (repo *orderRepository) ListRecent(ctx context.Context, limit int) ([]*repository.OrderSummary, error) {
	var rows []*orderSummaryRow

	query := repo.db.WithContext(ctx).
		Table("orders AS o").
		Select(`o.id AS order_id,
			o.order_timestamp,
			COALESCE(c.first_name || ' ' || c.last_name, '') AS customer_name,
			e.first_name || ' ' || e.last_name AS employee_name,
			s.name AS store_name,
			o.total_amount,
			o.points_earned,
			o.points_redeemed`).
		Joins("LEFT JOIN customers c ON c.id = o.customer_id").
		Joins("JOIN employees e ON e.id = o.employee_id").
		Joins("JOIN stores s ON s.id = o.store_id").
		Order("o.order_timestamp DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	summaries := make([]*repository.OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &repository.OrderSummary{
			OrderID:        row.OrderID,
			OrderTimestamp: row.OrderTimestamp,
			CustomerName:   row.CustomerName,
			EmployeeName:   row.EmployeeName,
			StoreName:      row.StoreName,
			TotalAmount:    row.TotalAmount,
			PointsEarned:   row.PointsEarned,
			PointsRedeemed: row.PointsRedeemed,
		})
	}

	return summaries, nil
}

// ListItems retrieves the line items of one order joined with the product's
// current display name.
func (repo *orderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderItemDetail, error) {
	var rows []*orderItemDetailRow

	if err := repo.db.WithContext(ctx).
		Table("order_items AS oi").
		Select(`oi.id AS order_item_id,
			p.name AS product_name,
			oi.quantity,
			oi.price_at_time_of_order`).
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("oi.order_id = ?", orderID).
		Order("p.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	details := make([]*repository.OrderItemDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, &repository.OrderItemDetail{
			OrderItemID:        row.OrderItemID,
			ProductName:        row.ProductName,
			Quantity:           row.Quantity,
			PriceAtTimeOfOrder: row.PriceAtTimeOfOrder,
		})
	}

	return details, nil
}

// RecordAppliedPromotion appends one applied-promotion audit row.
func (repo *orderRepository) RecordAppliedPromotion(ctx context.Context, applied *entity.AppliedPromotion) error {
	appliedM := &model.AppliedPromotionModel{
		OrderID:               applied.OrderID,
		PromotionID:           applied.PromotionID,
		DiscountAmountApplied: applied.DiscountAmountApplied,
	}

	if err := repo.db.WithContext(ctx).Create(appliedM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("audit row references a missing order or promotion")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record applied promotion")
	}

	applied.ID = appliedM.ID
	applied.AppliedAt = appliedM.CreatedAt

	return nil
}

// ListAppliedPromotions retrieves the audit rows of one order in application
// order.
func (repo *orderRepository) ListAppliedPromotions(ctx context.Context, orderID uuid.UUID) ([]*entity.AppliedPromotion, error) {
	var appliedModels []*model.AppliedPromotionModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&appliedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list applied promotions")
	}

	applied := make([]*entity.AppliedPromotion, 0, len(appliedModels))
	for _, appliedM := range appliedModels {
		applied = append(applied, &entity.AppliedPromotion{
			ID:                    appliedM.ID,
			OrderID:               appliedM.OrderID,
			PromotionID:           appliedM.PromotionID,
			DiscountAmountApplied: appliedM.DiscountAmountApplied,
			AppliedAt:             appliedM.CreatedAt,
		})
	}

	return applied, nil
}

// DeductFromTotal subtracts amount from the order's stored total. The guard
// keeps the stored total from ever going negative; the caller caps the amount
// before handing it over.
func (repo *orderRepository) DeductFromTotal(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND total_amount >= ?", orderID, amount).
		UpdateColumn("total_amount", gorm.Expr("total_amount - ?", amount))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deduct from order total")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// orderSummaryRow is the scan target of the ListRecent join.
type orderSummaryRow struct {
	OrderID        uuid.UUID
	OrderTimestamp time.Time
	CustomerName   string
	EmployeeName   string
	StoreName      string
	TotalAmount    decimal.Decimal
	PointsEarned   int
	PointsRedeemed int
}

// orderItemDetailRow is the scan target of the ListItems join.
type orderItemDetailRow struct {
	OrderItemID        uuid.UUID
	ProductName        string
	Quantity           int
	PriceAtTimeOfOrder decimal.Decimal
}

// toOrderDomain converts a persistence model to a domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	items := make([]*entity.OrderItem, 0, len(orderM.Items))
	for _, itemM := range orderM.Items {
		items = append(items, &entity.OrderItem{
			ID:                 itemM.ID,
			OrderID:            itemM.OrderID,
			ProductID:          itemM.ProductID,
			Quantity:           itemM.Quantity,
			PriceAtTimeOfOrder: itemM.PriceAtTimeOfOrder,
		})
	}

	return &entity.Order{
		ID:             orderM.ID,
		CustomerID:     orderM.CustomerID,
		EmployeeID:     orderM.EmployeeID,
		StoreID:        orderM.StoreID,
		OrderTimestamp: orderM.OrderTimestamp,
		TotalAmount:    orderM.TotalAmount,
		PointsEarned:   orderM.PointsEarned,
		PointsRedeemed: orderM.PointsRedeemed,
		Items:          items,
	}
}

// fromOrderDomain converts a domain entity to a persistence model.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	items := make([]*model.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &model.OrderItemModel{
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			PriceAtTimeOfOrder: item.PriceAtTimeOfOrder,
		})
	}

	return &model.OrderModel{
		CustomerID:     order.CustomerID,
		EmployeeID:     order.EmployeeID,
		StoreID:        order.StoreID,
		OrderTimestamp: order.OrderTimestamp,
		TotalAmount:    order.TotalAmount,
		PointsEarned:   order.PointsEarned,
		PointsRedeemed: order.PointsRedeemed,
		Items:          items,
	}
}
