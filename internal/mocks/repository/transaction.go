package repository

import (
	"context"

	"brewhub/internal/domain/repository"
)

// StubRepositoryFactory hands out the configured repositories, standing in for
// a transaction-bound factory in usecase tests.
type StubRepositoryFactory struct {
	Stores    repository.StoreRepository
	Employees repository.EmployeeRepository
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
	Orders    repository.OrderRepository
}

func (f *StubRepositoryFactory) StoreRepo() repository.StoreRepository {
	return f.Stores
}

func (f *StubRepositoryFactory) EmployeeRepo() repository.EmployeeRepository {
	return f.Employees
}

func (f *StubRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	return f.Customers
}

func (f *StubRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.Products
}

func (f *StubRepositoryFactory) OrderRepo() repository.OrderRepository {
	return f.Orders
}

// StubTransactionManager executes the callback against the stub factory. When
// the callback errors, the error is returned untouched — mirroring a rolled
// back transaction whose work never became visible.
type StubTransactionManager struct {
	Factory    *StubRepositoryFactory
	BeginErr   error // When set, Execute fails before invoking the callback.
	Executions int
	Rollbacks  int
}

func (s *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if s.BeginErr != nil {
		return s.BeginErr
	}
	s.Executions++
	if err := fn(s.Factory); err != nil {
		s.Rollbacks++

		return err
	}

	return nil
}
