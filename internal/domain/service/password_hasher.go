// Package service declares the infrastructure capabilities the usecases depend on.
package service

// PasswordHasher turns account passwords into stored hashes and back into a yes/no answer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check never errors: a malformed hash simply does not match.
	Check(password, hash string) bool
}
