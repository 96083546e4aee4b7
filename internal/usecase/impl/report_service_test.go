package impl

import (
	"context"
	"testing"

	"brewhub/config"
	"brewhub/internal/domain/entity"
	"brewhub/internal/domain/repository"
	mockRepo "brewhub/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportTestConfig() *config.Config {
	return &config.Config{
		Inventory: &config.InventoryConfig{LowStockThreshold: 10},
		Reports:   &config.ReportsConfig{TopLimit: 5},
	}
}

func TestReportService_TopProducts_UsesConfiguredLimit(t *testing.T) {
	mockReportRepo := mockRepo.NewMockReportRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewReportService(mockReportRepo, mockProductRepo, reportTestConfig())

	ctx := context.Background()
	rows := []*repository.ProductSales{
		{ProductName: "Latte", Category: "Beverage", TotalQuantitySold: 120, TotalRevenue: decimal.RequireFromString("360.00")},
	}
	mockReportRepo.On("TopProducts", ctx, 5).Return(rows, nil)

	got, err := service.TopProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReportService_MonthlySales(t *testing.T) {
	mockReportRepo := mockRepo.NewMockReportRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewReportService(mockReportRepo, mockProductRepo, reportTestConfig())

	ctx := context.Background()
	rows := []*repository.MonthlySales{
		{SaleMonth: "2026-08", NumberOfOrders: 42, MonthlyRevenue: decimal.RequireFromString("512.50")},
	}
	mockReportRepo.On("MonthlySales", ctx).Return(rows, nil)

	got, err := service.MonthlySales(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReportService_LowStock_UsesConfiguredThreshold(t *testing.T) {
	mockReportRepo := mockRepo.NewMockReportRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewReportService(mockReportRepo, mockProductRepo, reportTestConfig())

	ctx := context.Background()
	products := []*entity.Product{{Name: "House Beans", StockQuantity: 3}}
	mockProductRepo.On("ListLowStock", ctx, 10).Return(products, nil)

	got, err := service.LowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}
