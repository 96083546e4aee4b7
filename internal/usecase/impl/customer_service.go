package impl

import (
	"context"
	"errors"
	"strings"
	"time"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

// NewCustomerService creates a new customer service instance.
func NewCustomerService(customerRepo repository.CustomerRepository) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

func validateCustomerInput(input usecase.CustomerInput) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("customer first and last name are required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("customer email is required")
	}

	return nil
}

// CreateCustomer enrolls a new loyalty-program member. The join date is set
// to today and the point balance starts at zero.
func (s *customerService) CreateCustomer(ctx context.Context, input usecase.CustomerInput) (*entity.Customer, error) {
	if err := validateCustomerInput(input); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		PhoneNumber:   input.PhoneNumber,
		JoinDate:      s.now(),
		LoyaltyPoints: 0,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves one customer.
func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("customer does not exist")
		}

		return nil, err
	}

	return customer, nil
}

// ListCustomers retrieves all customers ordered by name.
func (s *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	return s.customerRepo.List(ctx)
}

// UpdateCustomer modifies an existing customer's contact details. The join
// date and point balance are never writable through this path.
func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input usecase.CustomerInput) (*entity.Customer, error) {
	if err := validateCustomerInput(input); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:          id,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("customer does not exist")
		}

		return nil, err
	}

	return s.customerRepo.FindByID(ctx, id)
}

// DeleteCustomer removes a customer. Their past orders survive as guest
// orders.
func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("customer does not exist")
		}

		return err
	}

	return nil
}
