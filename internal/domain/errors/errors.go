package errors

import (
	"net/http"

	"shop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same code, so copies made by WithDetails still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnprocessable = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNPROCESSABLE_INPUT",
		"Input cannot be processed",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusConflict,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusUnprocessableEntity,
		"PASSWORD_STRENGTH",
		"Password must be at least 8 characters and contain a capital letter",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"A user with this username already exists",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"A user with this email already exists",
		"",
	)

	ErrUserAlreadyBanned = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_BANNED",
		"User is already banned",
		"",
	)

	ErrUserNotBanned = NewBaseError(
		http.StatusConflict,
		"USER_NOT_BANNED",
		"User is not banned",
		"",
	)

	ErrUserBanned = NewBaseError(
		http.StatusForbidden,
		"USER_BANNED",
		"User is banned",
		"",
	)

	// Authentication errors
	ErrIdentifierRequired = NewBaseError(
		http.StatusBadRequest,
		"IDENTIFIER_REQUIRED",
		"Username or email is required",
		"",
	)

	ErrIncorrectPassword = NewBaseError(
		http.StatusBadRequest,
		"INCORRECT_PASSWORD",
		"Incorrect password",
		"",
	)

	ErrInvalidAdminKey = NewBaseError(
		http.StatusForbidden,
		"INVALID_ADMIN_KEY",
		"Invalid admin key",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Authorization header must carry a Bearer token",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusForbidden,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid refresh token",
		"",
	)

	ErrWrongTokenType = NewBaseError(
		http.StatusForbidden,
		"WRONG_TOKEN_TYPE",
		"Token type is not accepted here",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"Email address is not verified",
		"",
	)

	ErrAdminRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_REQUIRED",
		"Administrator privileges required",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Verification errors
	ErrAlreadyVerified = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_VERIFIED",
		"Email is already verified",
		"",
	)

	ErrResendAlreadyVerified = NewBaseError(
		http.StatusForbidden,
		"ALREADY_VERIFIED",
		"Email is already verified",
		"",
	)

	ErrVerificationCodeMissing = NewBaseError(
		http.StatusForbidden,
		"VERIFICATION_CODE_MISSING",
		"No active verification code, request a new one",
		"",
	)

	ErrVerificationCodeIncorrect = NewBaseError(
		http.StatusForbidden,
		"VERIFICATION_CODE_INCORRECT",
		"Incorrect code, try again",
		"",
	)

	// Catalog errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrCategoryExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_EXISTS",
		"A category with this title already exists",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductCreationFailed = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_CREATION_FAILED",
		"Product could not be saved",
		"",
	)

	ErrPriceNotAcceptable = NewBaseError(
		http.StatusNotAcceptable,
		"PRICE_NOT_ACCEPTABLE",
		"Price must be between 0 and 9999999.99",
		"",
	)

	ErrPricePrecision = NewBaseError(
		http.StatusUnprocessableEntity,
		"PRICE_PRECISION",
		"Price must have at most two decimal places",
		"",
	)

	ErrDiscountRange = NewBaseError(
		http.StatusUnprocessableEntity,
		"DISCOUNT_RANGE",
		"Discount must be between 0 and 99",
		"",
	)

	ErrImageFormat = NewBaseError(
		http.StatusNotAcceptable,
		"IMAGE_FORMAT",
		"Image must be a .png, .jpg or .webp file",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"Image exceeds the maximum allowed size",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_UPLOAD_FAILED",
		"Image could not be stored",
		"",
	)

	// Basket errors
	ErrBasketItemNotFound = NewBaseError(
		http.StatusNotFound,
		"BASKET_ITEM_NOT_FOUND",
		"Product is not in the basket",
		"",
	)

	ErrQuantityNotAcceptable = NewBaseError(
		http.StatusNotAcceptable,
		"QUANTITY_NOT_ACCEPTABLE",
		"Quantity cannot drop below 1, remove the item instead",
		"",
	)

	// Order errors
	ErrEmptyBasket = NewBaseError(
		http.StatusUnprocessableEntity,
		"EMPTY_BASKET",
		"Your basket is empty",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderStatusTransition = NewBaseError(
		http.StatusConflict,
		"ORDER_STATUS_TRANSITION",
		"Order cannot move to the requested status",
		"",
	)

	ErrOrderSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_SAVE_FAILED",
		"Order could not be saved",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Unwrap exposes the driver error to errors.Is/As
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
