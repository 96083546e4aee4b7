package usecase

import (
	"context"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerInput carries the writable contact fields of a customer. The join
// date and the loyalty balance are managed by the system, not by callers.
type CustomerInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// CustomerUsecase defines the customer management use cases.
type CustomerUsecase interface {
	// CreateCustomer enrolls a new loyalty-program member. The join date is
	// set to today and the point balance starts at zero.
	CreateCustomer(ctx context.Context, input CustomerInput) (*entity.Customer, error)

	// GetCustomer retrieves one customer.
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// ListCustomers retrieves all customers ordered by name.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// UpdateCustomer modifies an existing customer's contact details.
	UpdateCustomer(ctx context.Context, id uuid.UUID, input CustomerInput) (*entity.Customer, error)

	// DeleteCustomer removes a customer. Their past orders survive as guest
	// orders.
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}
