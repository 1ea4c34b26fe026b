// Package mocks holds hand-written testify mocks of the domain and usecase interfaces.
package mocks

import "github.com/stretchr/testify/mock"

// Result returns the i-th configured return value as T, or T's zero value when it was nil.
func Result[T any](args mock.Arguments, i int) T {
	var zero T
	if v := args.Get(i); v != nil {
		return v.(T)
	}

	return zero
}

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}
