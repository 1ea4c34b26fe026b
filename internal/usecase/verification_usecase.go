package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// ResendOutput tells the caller where the new code went.
type ResendOutput struct {
	Message string `json:"message"`
}

// VerificationUsecase manages email verification codes.
type VerificationUsecase interface {
	// Issue stores a fresh code for the user and queues the verification email.
	Issue(ctx context.Context, user *entity.User) error
	Verify(ctx context.Context, user *entity.User, code int) (*entity.User, error)
	Resend(ctx context.Context, user *entity.User) (*ResendOutput, error)
}
