package impl

import (
	"context"

	"brewhub/config"
	"brewhub/internal/domain/entity"
	"brewhub/internal/domain/repository"
	"brewhub/internal/usecase"
)

type reportService struct {
	reportRepo        repository.ReportRepository
	productRepo       repository.ProductRepository
	topLimit          int
	lowStockThreshold int
}

// NewReportService creates a new report service instance.
func NewReportService(
	reportRepo repository.ReportRepository,
	productRepo repository.ProductRepository,
	cfg *config.Config,
) usecase.ReportUsecase {
	return &reportService{
		reportRepo:        reportRepo,
		productRepo:       productRepo,
		topLimit:          cfg.Reports.TopLimit,
		lowStockThreshold: cfg.Inventory.LowStockThreshold,
	}
}

// TopProducts returns the best-selling products by revenue.
func (s *reportService) TopProducts(ctx context.Context) ([]*repository.ProductSales, error) {
	return s.reportRepo.TopProducts(ctx, s.topLimit)
}

// MonthlySales returns per-month order counts and revenue.
func (s *reportService) MonthlySales(ctx context.Context) ([]*repository.MonthlySales, error) {
	return s.reportRepo.MonthlySales(ctx)
}

// TopCustomers returns the highest-spending customers.
func (s *reportService) TopCustomers(ctx context.Context) ([]*repository.CustomerSpend, error) {
	return s.reportRepo.TopCustomers(ctx, s.topLimit)
}

// LowStock returns products at or below the configured stock threshold.
func (s *reportService) LowStock(ctx context.Context) ([]*entity.Product, error) {
	return s.productRepo.ListLowStock(ctx, s.lowStockThreshold)
}
