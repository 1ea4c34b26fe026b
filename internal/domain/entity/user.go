// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered shop account.
type User struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the user.
	Username      string    `json:"username"`       // Unique login name.
	Email         string    `json:"email"`          // Unique contact address, also accepted as a login identifier.
	PasswordHash  string    `json:"-"`              // bcrypt hash; the plaintext is never stored.
	Active        bool      `json:"active"`         // False while the user is banned.
	Admin         bool      `json:"admin"`          // Grants access to catalog, user and order administration.
	VerifiedEmail bool      `json:"verified_email"` // Flips to true once after a correct verification code.
	CreatedAt     time.Time `json:"created_at"`
}

// Roles returns the roles embedded into access tokens.
func (u *User) Roles() Roles {
	if u.Admin {
		return Roles{RoleUser, RoleAdmin}
	}

	return Roles{RoleUser}
}
