package errors

import (
	"net/http"
	"testing"

	"shop/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrProductNotFound.WithDetails("id=42")

	assert.True(t, errors.Is(err, ErrProductNotFound))
	assert.False(t, errors.Is(err, ErrCategoryNotFound))
	assert.Equal(t, "id=42", err.Details())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrUsernameTaken.WrapMessage("register alice")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "USERNAME_TAKEN", appErr.ErrorCode())
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Contains(t, wrapped.Error(), "register alice")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert product")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert product", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
