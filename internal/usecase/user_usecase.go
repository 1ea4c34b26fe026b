// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	// AdminKey, when non-empty, must match the configured key and grants admin rights.
	AdminKey string
}

// LoginInput identifies the user by username or email.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// GetUserInput looks a user up by id or username.
type GetUserInput struct {
	ID       uuid.UUID
	Username string
}

// --- Output DTOs ---

// TokenPair is returned after a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AccessToken is returned by the refresh flow.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserUsecase defines the interface for account and authentication operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*AccessToken, error)

	// Authenticate resolves an access token to the current user.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)

	GetUser(ctx context.Context, input *GetUserInput) (*entity.User, error)
	ListUsers(ctx context.Context, page int) ([]*entity.User, error)
	Ban(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Unban(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Delete(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
