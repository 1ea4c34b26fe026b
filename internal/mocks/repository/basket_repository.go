package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBasketRepository is a mock of repository.BasketRepository.
type MockBasketRepository struct {
	mock.Mock
}

// NewMockBasketRepository creates a mock whose expectations are asserted on cleanup.
func NewMockBasketRepository(t mocks.TestingT) *MockBasketRepository {
	m := &MockBasketRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBasketRepository) Create(ctx context.Context, item *entity.BasketItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockBasketRepository) FindItemForUpdate(ctx context.Context, userID, productID uuid.UUID) (*entity.BasketItem, error) {
	args := m.Called(ctx, userID, productID)

	return mocks.Result[*entity.BasketItem](args, 0), args.Error(1)
}

func (m *MockBasketRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockBasketRepository) DeleteItem(ctx context.Context, userID, productID uuid.UUID) (*entity.BasketItem, error) {
	args := m.Called(ctx, userID, productID)

	return mocks.Result[*entity.BasketItem](args, 0), args.Error(1)
}

func (m *MockBasketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BasketItem, error) {
	args := m.Called(ctx, userID)

	return mocks.Result[[]*entity.BasketItem](args, 0), args.Error(1)
}

func (m *MockBasketRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
