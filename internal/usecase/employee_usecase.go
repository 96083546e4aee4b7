package usecase

import (
	"context"
	"time"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeInput carries the writable fields of an employee. A nil StoreID
// leaves the employee unassigned.
type EmployeeInput struct {
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Position   string          `json:"position"`
	HireDate   time.Time       `json:"hire_date"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	StoreID    *uuid.UUID      `json:"store_id"`
}

// EmployeeUsecase defines the employee management use cases.
type EmployeeUsecase interface {
	// CreateEmployee registers a new staff member.
	CreateEmployee(ctx context.Context, input EmployeeInput) (*entity.Employee, error)

	// GetEmployee retrieves one employee.
	GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// ListEmployees retrieves all employees ordered by name.
	ListEmployees(ctx context.Context) ([]*entity.Employee, error)

	// UpdateEmployee modifies an existing employee.
	UpdateEmployee(ctx context.Context, id uuid.UUID, input EmployeeInput) (*entity.Employee, error)

	// DeleteEmployee removes an employee. Employees referenced by past orders
	// cannot be deleted.
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}
