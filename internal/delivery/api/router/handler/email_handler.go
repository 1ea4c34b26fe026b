package handler

import (
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmailHandlerParams holds dependencies for EmailHandler, injected by Fx.
type EmailHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
}

// EmailHandler serves the /email verification routes.
type EmailHandler struct {
	verificationUC usecase.VerificationUsecase
}

func NewEmailHandler(params EmailHandlerParams) *EmailHandler {
	return &EmailHandler{verificationUC: params.VerificationUC}
}

type VerifyRequest struct {
	Code int `json:"verification_code" validate:"required"`
}

func (h *EmailHandler) Verify(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrMissingToken)
	}

	var req VerifyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	verified, err := h.verificationUC.Verify(c.Request().Context(), user, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, verified)
}

// Resend answers 202: the email itself leaves through the background publisher.
func (h *EmailHandler) Resend(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrMissingToken)
	}

	out, err := h.verificationUC.Resend(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Accepted(c, out)
}
