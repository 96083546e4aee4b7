package handler

import (
	"net/http"

	"brewhub/internal/delivery/http/response"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PromotionHandler holds dependencies for promotion-related handlers.
type PromotionHandler struct {
	uc usecase.PromotionUsecase
}

// NewPromotionHandler is the constructor for PromotionHandler, injected by Fx.
func NewPromotionHandler(uc usecase.PromotionUsecase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

// CreatePromotion handles the promotion creation request.
func (h *PromotionHandler) CreatePromotion(c echo.Context) error {
	var input usecase.PromotionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}

	promotion, err := h.uc.CreatePromotion(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promotion, "Promotion created")
}

// GetPromotion handles the single promotion lookup request.
func (h *PromotionHandler) GetPromotion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid promotion ID")
	}

	promotion, err := h.uc.GetPromotion(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotion, "")
}

// ListPromotions handles the promotion listing request.
func (h *PromotionHandler) ListPromotions(c echo.Context) error {
	promotions, err := h.uc.ListPromotions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotions, "")
}

// ListActivePromotions handles the active general promotion listing used by
// the order-creation flow.
func (h *PromotionHandler) ListActivePromotions(c echo.Context) error {
	promotions, err := h.uc.ListActivePromotions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotions, "")
}

// UpdatePromotion handles the promotion update request.
func (h *PromotionHandler) UpdatePromotion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid promotion ID")
	}

	var input usecase.PromotionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}

	promotion, err := h.uc.UpdatePromotion(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotion, "Promotion updated")
}

// DeletePromotion handles the promotion deletion request.
func (h *PromotionHandler) DeletePromotion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid promotion ID")
	}

	if err := h.uc.DeletePromotion(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Promotion deleted")
}
