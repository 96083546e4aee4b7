package usecase

import (
	"context"

	"brewhub/internal/domain/entity"
	"brewhub/internal/domain/repository"
)

// ReportUsecase defines the read-only business reporting use cases. Row
// limits and the low-stock threshold come from configuration.
type ReportUsecase interface {
	// TopProducts returns the best-selling products by revenue.
	TopProducts(ctx context.Context) ([]*repository.ProductSales, error)

	// MonthlySales returns per-month order counts and revenue.
	MonthlySales(ctx context.Context) ([]*repository.MonthlySales, error)

	// TopCustomers returns the highest-spending customers.
	TopCustomers(ctx context.Context) ([]*repository.CustomerSpend, error)

	// LowStock returns products at or below the configured stock threshold.
	LowStock(ctx context.Context) ([]*entity.Product, error)
}
