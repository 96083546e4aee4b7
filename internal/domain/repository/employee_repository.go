package repository

import (
	"context"
	"errors"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEmployeeNotFound is returned when an employee is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the standard operations for employee persistence.
type EmployeeRepository interface {
	// FindByID retrieves a single employee by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// List retrieves all employees ordered by last name, first name.
	List(ctx context.Context) ([]*entity.Employee, error)

	// Create persists a new employee.
	Create(ctx context.Context, employee *entity.Employee) error

	// Update modifies an existing employee.
	Update(ctx context.Context, employee *entity.Employee) error

	// Delete removes an employee. Past orders referencing the employee
	// restrict the delete.
	Delete(ctx context.Context, id uuid.UUID) error
}
