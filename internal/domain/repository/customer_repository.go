package repository

import (
	"context"
	"errors"

	"brewhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInsufficientPoints is returned by RedeemPoints when the redemption
	// exceeds the customer's current balance.
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
)

// CustomerRepository defines the standard operations for customer persistence.
// Loyalty point mutations go through the guarded RedeemPoints/EarnPoints
// operations so the balance can never go negative.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// List retrieves all customers ordered by last name, first name.
	List(ctx context.Context) ([]*entity.Customer, error)

	// Create persists a new customer.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer's contact details. JoinDate and
	// LoyaltyPoints are not touched by this operation.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer. Past orders keep their rows with the
	// customer reference nullified.
	Delete(ctx context.Context, id uuid.UUID) error

	// RedeemPoints atomically decrements the customer's balance, failing with
	// ErrInsufficientPoints when points exceed the current balance.
	RedeemPoints(ctx context.Context, id uuid.UUID, points int) error

	// EarnPoints atomically increments the customer's balance.
	EarnPoints(ctx context.Context, id uuid.UUID, points int) error
}
