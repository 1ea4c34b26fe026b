package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// VerificationCodeMin and VerificationCodeMax bound the 6-digit code space.
	VerificationCodeMin = 100000
	VerificationCodeMax = 999999
)

// VerificationCode proves control of a user's email address. A user has at most one.
type VerificationCode struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      int
	ExpiresAt time.Time
}

// IsExpired reports whether the code can no longer be used at the given instant.
func (c *VerificationCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
