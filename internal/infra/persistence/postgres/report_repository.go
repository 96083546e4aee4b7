package postgres

import (
	"context"

	"brewhub/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface. All
// queries are read-only aggregates over committed orders.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// TopProducts returns the best-selling products by revenue, highest first.
// Revenue uses the immutable price snapshot, not the current catalog price.
func (repo *reportRepository) TopProducts(ctx context.Context, limit int) ([]*repository.ProductSales, error) {
	var rows []*productSalesRow

	query := repo.db.WithContext(ctx).
		Table("order_items AS oi").
		Select(`p.name AS product_name,
			p.category,
			SUM(oi.quantity) AS total_quantity_sold,
			SUM(oi.quantity * oi.price_at_time_of_order) AS total_revenue`).
		Joins("JOIN products p ON p.id = oi.product_id").
		Group("p.id, p.name, p.category").
		Order("total_revenue DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query top products")
	}

	sales := make([]*repository.ProductSales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, &repository.ProductSales{
			ProductName:       row.ProductName,
			Category:          row.Category,
			TotalQuantitySold: row.TotalQuantitySold,
			TotalRevenue:      row.TotalRevenue,
		})
	}

	return sales, nil
}

// MonthlySales returns per-month order counts and post-discount revenue,
// newest month first.
func (repo *reportRepository) MonthlySales(ctx context.Context) ([]*repository.MonthlySales, error) {
	var rows []*monthlySalesRow

	if err := repo.db.WithContext(ctx).
		Table("orders").
		Select(`to_char(order_timestamp, 'YYYY-MM') AS sale_month,
			COUNT(*) AS number_of_orders,
			SUM(total_amount) AS monthly_revenue`).
		Group("sale_month").
		Order("sale_month DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query monthly sales")
	}

	sales := make([]*repository.MonthlySales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, &repository.MonthlySales{
			SaleMonth:      row.SaleMonth,
			NumberOfOrders: row.NumberOfOrders,
			MonthlyRevenue: row.MonthlyRevenue,
		})
	}

	return sales, nil
}

// TopCustomers returns the highest-spending enrolled customers, highest
// first. Guest orders carry no customer and are excluded by the join.
func (repo *reportRepository) TopCustomers(ctx context.Context, limit int) ([]*repository.CustomerSpend, error) {
	var rows []*customerSpendRow

	query := repo.db.WithContext(ctx).
		Table("orders AS o").
		Select(`c.first_name,
			c.last_name,
			c.email,
			COUNT(o.id) AS total_orders,
			SUM(o.total_amount) AS total_spent`).
		Joins("JOIN customers c ON c.id = o.customer_id").
		Group("c.id, c.first_name, c.last_name, c.email").
		Order("total_spent DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query top customers")
	}

	spend := make([]*repository.CustomerSpend, 0, len(rows))
	for _, row := range rows {
		spend = append(spend, &repository.CustomerSpend{
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Email:       row.Email,
			TotalOrders: row.TotalOrders,
			TotalSpent:  row.TotalSpent,
		})
	}

	return spend, nil
}

// productSalesRow is the scan target of the TopProducts aggregate.
type productSalesRow struct {
	ProductName       string
	Category          string
	TotalQuantitySold int
	TotalRevenue      decimal.Decimal
}

// monthlySalesRow is the scan target of the MonthlySales aggregate.
type monthlySalesRow struct {
	SaleMonth      string
	NumberOfOrders int
	MonthlyRevenue decimal.Decimal
}

// customerSpendRow is the scan target of the TopCustomers aggregate.
type customerSpendRow struct {
	FirstName   string
	LastName    string
	Email       string
	TotalOrders int
	TotalSpent  decimal.Decimal
}
