package handler

import (
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the /order routes.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

type CreateOrderRequest struct {
	PostIndex int `json:"post_index" validate:"required,gt=0"`
}

// Create places an order from the caller's basket and empties it.
func (h *OrderHandler) Create(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrMissingToken)
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Place(c.Request().Context(), user, req.PostIndex)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrMissingToken)
	}

	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.OrderStatus(raw)
		status = &s
	}

	orders, err := h.orderUC.ListMine(c.Request().Context(), user, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

func (h *OrderHandler) ListAll(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListByStatus(c.Request().Context(), entity.OrderStatus(c.QueryParam("status")), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID := c.QueryParam("order_id")
	if orderID == "" {
		return response.AppError(c, domainerrors.ErrUnprocessable.WithDetails("order_id is required"))
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(c.QueryParam("new_status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}
