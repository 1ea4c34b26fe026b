package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVerificationCodeNotFound is returned when the user has no code on record.
var ErrVerificationCodeNotFound = errors.New("verification code not found")

// VerificationCodeRepository stores the single live verification code of each user.
type VerificationCodeRepository interface {
	// Replace deletes any existing code of the user and inserts the new one.
	// Callers run it inside a transaction so the swap is atomic.
	Replace(ctx context.Context, code *entity.VerificationCode) error

	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.VerificationCode, error)

	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
