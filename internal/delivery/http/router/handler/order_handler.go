package handler

import (
	"net/http"

	"brewhub/internal/delivery/http/response"
	"brewhub/internal/domain/entity"
	"brewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	cartUC  usecase.CartUsecase
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(cartUC usecase.CartUsecase, orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{
		cartUC:  cartUC,
		orderUC: orderUC,
	}
}

type orderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type createOrderRequest struct {
	CustomerID     *uuid.UUID         `json:"customer_id"`
	EmployeeID     uuid.UUID          `json:"employee_id" validate:"required"`
	StoreID        uuid.UUID          `json:"store_id" validate:"required"`
	PointsToRedeem int                `json:"points_to_redeem" validate:"min=0"`
	Items          []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	PromotionIDs   []uuid.UUID        `json:"promotion_ids"`
}

type createOrderResponse struct {
	Order      *entity.Order                  `json:"order"`
	Promotions *usecase.ApplyPromotionsOutput `json:"promotions,omitempty"`
}

// buildCart runs every requested line through the cart admission check.
func (h *OrderHandler) buildCart(c echo.Context, items []orderItemRequest) (*entity.Cart, error) {
	cart := entity.NewCart()
	for _, item := range items {
		if err := h.cartUC.AddItem(c.Request().Context(), cart, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	return cart, nil
}

// CreateOrder handles the order commit request: cart admission, the atomic
// order transaction, then an optional promotion pass over the committed
// order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.buildCart(c, req.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := h.orderUC.ProcessOrder(c.Request().Context(), usecase.ProcessOrderInput{
		Cart:           cart,
		CustomerID:     req.CustomerID,
		EmployeeID:     req.EmployeeID,
		StoreID:        req.StoreID,
		PointsToRedeem: req.PointsToRedeem,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := &createOrderResponse{Order: out.Order}

	// The order is committed at this point. The promotion pass is best
	// effort; its per-promotion outcomes ride along in the response.
	if len(req.PromotionIDs) > 0 {
		promoOut, err := h.orderUC.ApplyPromotions(c.Request().Context(), usecase.ApplyPromotionsInput{
			OrderID:      out.Order.ID,
			PromotionIDs: req.PromotionIDs,
		})
		if err != nil {
			return errors.WithStack(err)
		}
		resp.Promotions = promoOut
		resp.Order.TotalAmount = promoOut.FinalTotal
	}

	return response.Success(c, http.StatusCreated, resp, "Order created")
}

type previewCartRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PreviewCart resolves a prospective cart against the live catalog without
// committing anything.
func (h *OrderHandler) PreviewCart(c echo.Context) error {
	var req previewCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.buildCart(c, req.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	view, err := h.cartUC.View(c.Request().Context(), cart)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

type applyPromotionsRequest struct {
	PromotionIDs []uuid.UUID `json:"promotion_ids" validate:"required,min=1"`
}

// ApplyPromotions handles a standalone promotion pass over a committed order.
func (h *OrderHandler) ApplyPromotions(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req applyPromotionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.orderUC.ApplyPromotions(c.Request().Context(), usecase.ApplyPromotionsInput{
		OrderID:      orderID,
		PromotionIDs: req.PromotionIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "Promotions applied")
}

// GetOrder handles the single order lookup request.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	detail, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// ListOrders handles the recent order listing request.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	summaries, err := h.orderUC.ListRecentOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries, "")
}
