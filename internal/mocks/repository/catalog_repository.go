package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock whose expectations are asserted on cleanup.
func NewMockCategoryRepository(t mocks.TestingT) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryRepository) FindByTitle(ctx context.Context, title string) (*entity.Category, error) {
	args := m.Called(ctx, title)

	return mocks.Result[*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)

	return mocks.Result[[]*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.Category](args, 0), args.Error(1)
}

// MockProductRepository is a mock of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock whose expectations are asserted on cleanup.
func NewMockProductRepository(t mocks.TestingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.Product](args, 0), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, ids)

	return mocks.Result[[]*entity.Product](args, 0), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, offset, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, offset, limit)

	return mocks.Result[[]*entity.Product](args, 0), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.Product](args, 0), args.Error(1)
}
