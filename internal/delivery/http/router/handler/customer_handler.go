package handler

import (
	"net/http"

	"brewhub/internal/delivery/http/response"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// CreateCustomer handles the loyalty-program enrollment request.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var input usecase.CustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	customer, err := h.uc.CreateCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer enrolled")
}

// GetCustomer handles the single customer lookup request.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "")
}

// ListCustomers handles the customer listing request.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "")
}

// UpdateCustomer handles the customer contact update request.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	var input usecase.CustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	customer, err := h.uc.UpdateCustomer(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer updated")
}

// DeleteCustomer handles the customer deletion request.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted")
}
