package postgres

import (
	"context"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employeeRepository implements the repository.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

// FindByID retrieves an employee by their unique ID.
func (repo *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employeeM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by ID")
	}

	return toEmployeeDomain(&employeeM), nil
}

// List retrieves all employees ordered by last name, first name.
func (repo *employeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	var employeeModels []*model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&employeeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, toEmployeeDomain(employeeM))
	}

	return employees, nil
}

// Create persists a new employee.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("assigned store does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	// Update the entity with generated values
	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

// Update modifies an existing employee.
func (repo *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", employee.ID).
		Updates(map[string]interface{}{
			"first_name":  employee.FirstName,
			"last_name":   employee.LastName,
			"position":    employee.Position,
			"hire_date":   employee.HireDate,
			"hourly_rate": employee.HourlyRate,
			"store_id":    employee.StoreID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("assigned store does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update employee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

// Delete removes an employee. Past orders referencing the employee restrict
// the delete.
func (repo *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmployeeModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrDeleteRestricted.WrapMessage("employee is referenced by past orders")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete employee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

// toEmployeeDomain converts a persistence model to a domain entity.
func toEmployeeDomain(employeeM *model.EmployeeModel) *entity.Employee {
	return &entity.Employee{
		ID:         employeeM.ID,
		FirstName:  employeeM.FirstName,
		LastName:   employeeM.LastName,
		Position:   employeeM.Position,
		HireDate:   employeeM.HireDate,
		HourlyRate: employeeM.HourlyRate,
		StoreID:    employeeM.StoreID,
		CreatedAt:  employeeM.CreatedAt,
		UpdatedAt:  employeeM.UpdatedAt,
	}
}

// fromEmployeeDomain converts a domain entity to a persistence model.
func fromEmployeeDomain(employee *entity.Employee) *model.EmployeeModel {
	return &model.EmployeeModel{
		ID:         employee.ID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Position:   employee.Position,
		HireDate:   employee.HireDate,
		HourlyRate: employee.HourlyRate,
		StoreID:    employee.StoreID,
	}
}
