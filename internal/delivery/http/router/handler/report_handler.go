package handler

import (
	"net/http"

	"brewhub/internal/delivery/http/response"
	"brewhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for reporting handlers.
type ReportHandler struct {
	uc usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TopProducts handles the best-selling products report request.
func (h *ReportHandler) TopProducts(c echo.Context) error {
	rows, err := h.uc.TopProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// MonthlySales handles the monthly sales summary request.
func (h *ReportHandler) MonthlySales(c echo.Context) error {
	rows, err := h.uc.MonthlySales(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// TopCustomers handles the top-customers report request.
func (h *ReportHandler) TopCustomers(c echo.Context) error {
	rows, err := h.uc.TopCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// LowStock handles the low-stock report request.
func (h *ReportHandler) LowStock(c echo.Context) error {
	products, err := h.uc.LowStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}
