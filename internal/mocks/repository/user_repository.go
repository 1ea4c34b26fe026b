package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted on cleanup.
func NewMockUserRepository(t mocks.TestingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) FindOne(ctx context.Context, lookup repository.UserLookup) (*entity.User, error) {
	args := m.Called(ctx, lookup)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockUserRepository) SetVerified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	args := m.Called(ctx, offset, limit)

	return mocks.Result[[]*entity.User](args, 0), args.Error(1)
}
