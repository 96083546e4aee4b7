package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductSales is one row of the top-selling-products report.
type ProductSales struct {
	ProductName       string
	Category          string
	TotalQuantitySold int
	TotalRevenue      decimal.Decimal
}

// MonthlySales is one row of the monthly sales summary, keyed by "YYYY-MM".
type MonthlySales struct {
	SaleMonth      string
	NumberOfOrders int
	MonthlyRevenue decimal.Decimal
}

// CustomerSpend is one row of the top-customers report.
type CustomerSpend struct {
	FirstName   string
	LastName    string
	Email       string
	TotalOrders int
	TotalSpent  decimal.Decimal
}

// ReportRepository exposes the aggregate reporting queries. All operations are
// read-only; low-stock reporting lives on ProductRepository.
type ReportRepository interface {
	// TopProducts returns the best-selling products by revenue, highest first.
	TopProducts(ctx context.Context, limit int) ([]*ProductSales, error)

	// MonthlySales returns per-month order counts and revenue, newest first.
	MonthlySales(ctx context.Context) ([]*MonthlySales, error)

	// TopCustomers returns the highest-spending customers, highest first.
	TopCustomers(ctx context.Context, limit int) ([]*CustomerSpend, error)
}
