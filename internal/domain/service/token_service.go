package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shop/internal/domain/entity"
)

// TokenType tags a token with the endpoint family that accepts it.
type TokenType string

const (
	TokenTypeAccess  TokenType = "ACCESS"
	TokenTypeRefresh TokenType = "REFRESH"
)

var (
	// ErrTokenInvalid covers malformed tokens and signature failures.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned for a well-formed token past its exp claim.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenWrongType is returned when the type claim differs from the one expected.
	ErrTokenWrongType = errors.New("token type mismatch")
)

// Claims defines the custom claims for the JWT tokens.
// Refresh tokens carry only UserID and Type.
type Claims struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username,omitempty"`
	Email    string    `json:"email,omitempty"`
	Roles    []string  `json:"roles,omitempty"`
	Type     TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and decodes signed access/refresh tokens.
type TokenService interface {
	GenerateAccessToken(user *entity.User) (string, error)
	GenerateRefreshToken(user *entity.User) (string, error)

	// ParseToken verifies signature and expiry, then checks the type claim
	// against expected as a separate step.
	ParseToken(tokenString string, expected TokenType) (*Claims, error)
}
