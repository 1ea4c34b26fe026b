package handler

import (
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BasketHandlerParams holds dependencies for BasketHandler, injected by Fx.
type BasketHandlerParams struct {
	fx.In

	BasketUC usecase.BasketUsecase
}

// BasketHandler serves the /basket routes. Every route sits behind Authenticate.
type BasketHandler struct {
	basketUC usecase.BasketUsecase
}

func NewBasketHandler(params BasketHandlerParams) *BasketHandler {
	return &BasketHandler{basketUC: params.BasketUC}
}

func (h *BasketHandler) Full(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrMissingToken)
	}

	basket, err := h.basketUC.Full(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, basket)
}

func (h *BasketHandler) Clear(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrMissingToken)
	}

	if err := h.basketUC.Clear(c.Request().Context(), user); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, response.MessageBody{Message: "basket cleared"})
}

func (h *BasketHandler) Add(c echo.Context) error {
	user, productID, err := basketTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.basketUC.Add(c.Request().Context(), user, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, item)
}

// UpdateQuantity takes ?delta=1 or ?delta=-1.
func (h *BasketHandler) UpdateQuantity(c echo.Context) error {
	user, productID, err := basketTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var delta int
	switch c.QueryParam("delta") {
	case "1", "+1":
		delta = 1
	case "-1":
		delta = -1
	default:
		return response.AppError(c, domainerrors.ErrUnprocessable.WithDetails("delta must be 1 or -1"))
	}

	item, err := h.basketUC.UpdateQuantity(c.Request().Context(), user, productID, delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *BasketHandler) Remove(c echo.Context) error {
	user, productID, err := basketTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.basketUC.Remove(c.Request().Context(), user, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func basketTarget(c echo.Context) (*entity.User, uuid.UUID, error) {
	user, ok := middleware.GetUser(c)
	if !ok {
		return nil, uuid.Nil, domainerrors.ErrMissingToken
	}

	productID, err := requiredUUID("productId", c.Param("productId"))
	if err != nil {
		return nil, uuid.Nil, err
	}

	return user, productID, nil
}
