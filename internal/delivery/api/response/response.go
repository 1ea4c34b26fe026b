// Package response renders the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "shop/internal/delivery/context"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps every successful payload.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps every failure.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// MessageBody is the payload of endpoints that only report what happened.
type MessageBody struct {
	Message string `json:"message"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data under the given status.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

func Accepted(c echo.Context, data any) error {
	return Success(c, http.StatusAccepted, data)
}

// Error writes an error envelope. Details are dropped for 5xx and auth failures.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// AppError renders a domain error with its details, if any.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError renders AppErrors directly and hands anything else to the
// server's error handler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsTarget[domainerrors.AppError](err); ok {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
