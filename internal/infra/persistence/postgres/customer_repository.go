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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByID retrieves a customer by their unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// List retrieves all customers ordered by last name, first name.
func (repo *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	// Update the entity with generated values
	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// Update modifies an existing customer's contact details. JoinDate and
// LoyaltyPoints are deliberately excluded from the column set.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"first_name":   customer.FirstName,
			"last_name":    customer.LastName,
			"email":        customer.Email,
			"phone_number": customer.PhoneNumber,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer. Past orders keep their rows with the customer
// reference nullified by the schema.
func (repo *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CustomerModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// RedeemPoints atomically decrements the customer's loyalty balance. The
// guard in the WHERE clause makes overdraw impossible even when two
// transactions race on the same customer.
func (repo *customerRepository) RedeemPoints(ctx context.Context, id uuid.UUID, points int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND loyalty_points >= ?", id, points).
		UpdateColumn("loyalty_points", gorm.Expr("loyalty_points - ?", points))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to redeem loyalty points")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing customer from an insufficient balance.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.CustomerModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check customer existence")
		}
		if count == 0 {
			return repository.ErrCustomerNotFound
		}

		return repository.ErrInsufficientPoints
	}

	return nil
}

// EarnPoints atomically increments the customer's loyalty balance.
func (repo *customerRepository) EarnPoints(ctx context.Context, id uuid.UUID, points int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to award loyalty points")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// toCustomerDomain converts a persistence model to a domain entity.
func toCustomerDomain(customerM *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:            customerM.ID,
		FirstName:     customerM.FirstName,
		LastName:      customerM.LastName,
		Email:         customerM.Email,
		PhoneNumber:   customerM.PhoneNumber,
		JoinDate:      customerM.JoinDate,
		LoyaltyPoints: customerM.LoyaltyPoints,
		CreatedAt:     customerM.CreatedAt,
		UpdatedAt:     customerM.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain entity to a persistence model.
func fromCustomerDomain(customer *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:            customer.ID,
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		Email:         customer.Email,
		PhoneNumber:   customer.PhoneNumber,
		JoinDate:      customer.JoinDate,
		LoyaltyPoints: customer.LoyaltyPoints,
	}
}
