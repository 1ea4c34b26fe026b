package repository

import (
	"context"

	"shop/internal/domain/repository"
	"shop/internal/mocks"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager.
// Return a func(context.Context, func(repository.RepositoryFactory) error) error to run the callback.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock whose expectations are asserted on cleanup.
func NewMockTransactionManager(t mocks.TestingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return args.Error(0)
}

// RunWith returns an Execute result that runs the callback against factory.
func RunWith(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}

// MockRepositoryFactory hands out fixed repositories; nil fields are never expected to be used.
type MockRepositoryFactory struct {
	Users    repository.UserRepository
	Codes    repository.VerificationCodeRepository
	Category repository.CategoryRepository
	Products repository.ProductRepository
	Basket   repository.BasketRepository
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository { return f.Users }

func (f *MockRepositoryFactory) VerificationCodeRepo() repository.VerificationCodeRepository {
	return f.Codes
}

func (f *MockRepositoryFactory) CategoryRepo() repository.CategoryRepository { return f.Category }

func (f *MockRepositoryFactory) ProductRepo() repository.ProductRepository { return f.Products }

func (f *MockRepositoryFactory) BasketRepo() repository.BasketRepository { return f.Basket }
