// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches a lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameExists is returned when the username is already registered.
	ErrUsernameExists = errors.New("username already exists")
	// ErrEmailExists is returned when the email is already registered.
	ErrEmailExists = errors.New("email already exists")
)

// UserLookup selects a user by any of its unique keys; the first non-empty key set wins a match.
type UserLookup struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user; duplicate keys surface as ErrUsernameExists or ErrEmailExists.
	Create(ctx context.Context, user *entity.User) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindOne matches any of the populated lookup keys.
	FindOne(ctx context.Context, lookup UserLookup) (*entity.User, error)

	// SetActive flips the active flag. Returns ErrUserNotFound when no row was touched.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// SetVerified sets verified_email to true; repeating it is harmless.
	SetVerified(ctx context.Context, id uuid.UUID) error

	// Delete removes the user and returns the row as it was.
	Delete(ctx context.Context, id uuid.UUID) (*entity.User, error)

	List(ctx context.Context, offset, limit int) ([]*entity.User, error)
}
