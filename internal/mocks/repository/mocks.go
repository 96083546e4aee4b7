// Package repository provides hand-maintained testify mocks for the domain
// repository interfaces, plus transaction-manager test doubles.
package repository

import (
	"context"
	"testing"
	"time"

	"brewhub/internal/domain/entity"
	"brewhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func register(t *testing.T, m *mock.Mock) {
	t.Helper()
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockStoreRepository mocks repository.StoreRepository.
type MockStoreRepository struct{ mock.Mock }

// NewMockStoreRepository returns a mock registered with the test's cleanup.
func NewMockStoreRepository(t *testing.T) *MockStoreRepository {
	m := &MockStoreRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	args := m.Called(ctx, id)
	store, _ := args.Get(0).(*entity.Store)

	return store, args.Error(1)
}

func (m *MockStoreRepository) List(ctx context.Context) ([]*entity.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]*entity.Store)

	return stores, args.Error(1)
}

func (m *MockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockEmployeeRepository mocks repository.EmployeeRepository.
type MockEmployeeRepository struct{ mock.Mock }

// NewMockEmployeeRepository returns a mock registered with the test's cleanup.
func NewMockEmployeeRepository(t *testing.T) *MockEmployeeRepository {
	m := &MockEmployeeRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	employee, _ := args.Get(0).(*entity.Employee)

	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]*entity.Employee)

	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCustomerRepository mocks repository.CustomerRepository.
type MockCustomerRepository struct{ mock.Mock }

// NewMockCustomerRepository returns a mock registered with the test's cleanup.
func NewMockCustomerRepository(t *testing.T) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*entity.Customer)

	return customer, args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*entity.Customer)

	return customers, args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) RedeemPoints(ctx context.Context, id uuid.UUID, points int) error {
	return m.Called(ctx, id, points).Error(0)
}

func (m *MockCustomerRepository) EarnPoints(ctx context.Context, id uuid.UUID, points int) error {
	return m.Called(ctx, id, points).Error(0)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct{ mock.Mock }

// NewMockProductRepository returns a mock registered with the test's cleanup.
func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	args := m.Called(ctx, threshold)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

// MockPromotionRepository mocks repository.PromotionRepository.
type MockPromotionRepository struct{ mock.Mock }

// NewMockPromotionRepository returns a mock registered with the test's cleanup.
func NewMockPromotionRepository(t *testing.T) *MockPromotionRepository {
	m := &MockPromotionRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockPromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	args := m.Called(ctx, id)
	promotion, _ := args.Get(0).(*entity.Promotion)

	return promotion, args.Error(1)
}

func (m *MockPromotionRepository) List(ctx context.Context) ([]*entity.Promotion, error) {
	args := m.Called(ctx)
	promotions, _ := args.Get(0).([]*entity.Promotion)

	return promotions, args.Error(1)
}

func (m *MockPromotionRepository) ListActiveGeneral(ctx context.Context, day time.Time) ([]*entity.Promotion, error) {
	args := m.Called(ctx, day)
	promotions, _ := args.Get(0).([]*entity.Promotion)

	return promotions, args.Error(1)
}

func (m *MockPromotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	return m.Called(ctx, promotion).Error(0)
}

func (m *MockPromotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	return m.Called(ctx, promotion).Error(0)
}

func (m *MockPromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct{ mock.Mock }

// NewMockOrderRepository returns a mock registered with the test's cleanup.
func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderRepository) ListRecent(ctx context.Context, limit int) ([]*repository.OrderSummary, error) {
	args := m.Called(ctx, limit)
	summaries, _ := args.Get(0).([]*repository.OrderSummary)

	return summaries, args.Error(1)
}

func (m *MockOrderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderItemDetail, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]*repository.OrderItemDetail)

	return items, args.Error(1)
}

func (m *MockOrderRepository) RecordAppliedPromotion(ctx context.Context, applied *entity.AppliedPromotion) error {
	return m.Called(ctx, applied).Error(0)
}

func (m *MockOrderRepository) ListAppliedPromotions(ctx context.Context, orderID uuid.UUID) ([]*entity.AppliedPromotion, error) {
	args := m.Called(ctx, orderID)
	applied, _ := args.Get(0).([]*entity.AppliedPromotion)

	return applied, args.Error(1)
}

func (m *MockOrderRepository) DeductFromTotal(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) error {
	return m.Called(ctx, orderID, amount).Error(0)
}

// MockReportRepository mocks repository.ReportRepository.
type MockReportRepository struct{ mock.Mock }

// NewMockReportRepository returns a mock registered with the test's cleanup.
func NewMockReportRepository(t *testing.T) *MockReportRepository {
	m := &MockReportRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockReportRepository) TopProducts(ctx context.Context, limit int) ([]*repository.ProductSales, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]*repository.ProductSales)

	return rows, args.Error(1)
}

func (m *MockReportRepository) MonthlySales(ctx context.Context) ([]*repository.MonthlySales, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*repository.MonthlySales)

	return rows, args.Error(1)
}

func (m *MockReportRepository) TopCustomers(ctx context.Context, limit int) ([]*repository.CustomerSpend, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]*repository.CustomerSpend)

	return rows, args.Error(1)
}
