package impl

import (
	"context"
	"testing"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
	mockRepo "brewhub/internal/mocks/repository"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_CreateCustomer(t *testing.T) {
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(mockCustomerRepo)

	ctx := context.Background()
	input := usecase.CustomerInput{
		FirstName: "Maya",
		LastName:  "Chen",
		Email:     "maya.chen@example.com",
	}

	mockCustomerRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Customer) bool {
		return c.Email == input.Email && c.LoyaltyPoints == 0 && !c.JoinDate.IsZero()
	})).Return(nil)

	customer, err := service.CreateCustomer(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Maya Chen", customer.FullName())
	assert.Zero(t, customer.LoyaltyPoints)
}

func TestCustomerService_CreateCustomer_Validation(t *testing.T) {
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(mockCustomerRepo)

	_, err := service.CreateCustomer(context.Background(), usecase.CustomerInput{FirstName: "Maya"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.CreateCustomer(context.Background(), usecase.CustomerInput{
		FirstName: "Maya",
		LastName:  "Chen",
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed, "email is required")
}

func TestCustomerService_CreateCustomer_DuplicateEmail(t *testing.T) {
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(mockCustomerRepo)

	ctx := context.Background()
	mockCustomerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Customer")).
		Return(domainerrors.ErrDuplicateEmail)

	_, err := service.CreateCustomer(ctx, usecase.CustomerInput{
		FirstName: "Maya",
		LastName:  "Chen",
		Email:     "taken@example.com",
	})
	require.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(mockCustomerRepo)

	ctx := context.Background()
	customerID := uuid.New()
	mockCustomerRepo.On("FindByID", ctx, customerID).Return(nil, repository.ErrCustomerNotFound)

	_, err := service.GetCustomer(ctx, customerID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(mockCustomerRepo)

	ctx := context.Background()
	customerID := uuid.New()
	mockCustomerRepo.On("Delete", ctx, customerID).Return(nil)

	require.NoError(t, service.DeleteCustomer(ctx, customerID))
}
