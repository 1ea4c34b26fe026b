package entity

import "slices"

// Role is a capability carried in the access token's roles claim.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Roles is the set of roles a user holds.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings renders the roles for the token claims.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}
