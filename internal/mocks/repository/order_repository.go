package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/mocks"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates a mock whose expectations are asserted on cleanup.
func NewMockOrderRepository(t mocks.TestingT) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Insert(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderRepository) ListByUsername(ctx context.Context, username string, status *entity.OrderStatus) ([]*entity.Order, error) {
	args := m.Called(ctx, username, status)

	return mocks.Result[[]*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus, offset, limit int) ([]*entity.Order, error) {
	args := m.Called(ctx, status, offset, limit)

	return mocks.Result[[]*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, id, from, to)

	return mocks.Result[*entity.Order](args, 0), args.Error(1)
}
