package impl

import (
	"context"
	"errors"
	"strings"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
)

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	storeRepo    repository.StoreRepository
}

// NewEmployeeService creates a new employee service instance.
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	storeRepo repository.StoreRepository,
) usecase.EmployeeUsecase {
	return &employeeService{
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
	}
}

func (s *employeeService) validateInput(ctx context.Context, input usecase.EmployeeInput) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("employee first and last name are required")
	}
	if input.HourlyRate.IsNegative() {
		return domainerrors.ErrValidationFailed.WrapMessage("hourly rate cannot be negative")
	}
	if input.StoreID != nil {
		if _, err := s.storeRepo.FindByID(ctx, *input.StoreID); err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrValidationFailed.WrapMessage("assigned store does not exist")
			}

			return err
		}
	}

	return nil
}

// CreateEmployee registers a new staff member.
func (s *employeeService) CreateEmployee(ctx context.Context, input usecase.EmployeeInput) (*entity.Employee, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Position:   input.Position,
		HireDate:   input.HireDate,
		HourlyRate: input.HourlyRate,
		StoreID:    input.StoreID,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee retrieves one employee.
func (s *employeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("employee does not exist")
		}

		return nil, err
	}

	return employee, nil
}

// ListEmployees retrieves all employees ordered by name.
func (s *employeeService) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// UpdateEmployee modifies an existing employee.
func (s *employeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, input usecase.EmployeeInput) (*entity.Employee, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		ID:         id,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Position:   input.Position,
		HireDate:   input.HireDate,
		HourlyRate: input.HourlyRate,
		StoreID:    input.StoreID,
	}
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("employee does not exist")
		}

		return nil, err
	}

	return s.employeeRepo.FindByID(ctx, id)
}

// DeleteEmployee removes an employee.
func (s *employeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("employee does not exist")
		}

		return err
	}

	return nil
}
