package handler

import (
	"net/http"

	"brewhub/internal/delivery/http/response"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmployeeHandler holds dependencies for employee-related handlers.
type EmployeeHandler struct {
	uc usecase.EmployeeUsecase
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// CreateEmployee handles the employee creation request.
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var input usecase.EmployeeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}

	employee, err := h.uc.CreateEmployee(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, employee, "Employee created")
}

// GetEmployee handles the single employee lookup request.
func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	employee, err := h.uc.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employee, "")
}

// ListEmployees handles the employee listing request.
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	employees, err := h.uc.ListEmployees(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employees, "")
}

// UpdateEmployee handles the employee update request.
func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	var input usecase.EmployeeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}

	employee, err := h.uc.UpdateEmployee(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employee, "Employee updated")
}

// DeleteEmployee handles the employee deletion request.
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	if err := h.uc.DeleteEmployee(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee deleted")
}
