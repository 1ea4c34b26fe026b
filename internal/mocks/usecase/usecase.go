// Package usecase holds testify mocks of the usecase interfaces for handler tests.
package usecase

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/mocks"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockUserUsecase(t mocks.TestingT) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPair, error) {
	args := m.Called(ctx, input)

	return mocks.Result[*usecase.TokenPair](args, 0), args.Error(1)
}

func (m *MockUserUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.AccessToken, error) {
	args := m.Called(ctx, refreshToken)

	return mocks.Result[*usecase.AccessToken](args, 0), args.Error(1)
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	args := m.Called(ctx, accessToken)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, input *usecase.GetUserInput) (*entity.User, error) {
	args := m.Called(ctx, input)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, page int) ([]*entity.User, error) {
	args := m.Called(ctx, page)

	return mocks.Result[[]*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) Ban(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) Unban(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) Delete(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

// MockVerificationUsecase is a mock of usecase.VerificationUsecase.
type MockVerificationUsecase struct {
	mock.Mock
}

// NewMockVerificationUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockVerificationUsecase(t mocks.TestingT) *MockVerificationUsecase {
	m := &MockVerificationUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVerificationUsecase) Issue(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockVerificationUsecase) Verify(ctx context.Context, user *entity.User, code int) (*entity.User, error) {
	args := m.Called(ctx, user, code)

	return mocks.Result[*entity.User](args, 0), args.Error(1)
}

func (m *MockVerificationUsecase) Resend(ctx context.Context, user *entity.User) (*usecase.ResendOutput, error) {
	args := m.Called(ctx, user)

	return mocks.Result[*usecase.ResendOutput](args, 0), args.Error(1)
}

// MockCategoryUsecase is a mock of usecase.CategoryUsecase.
type MockCategoryUsecase struct {
	mock.Mock
}

// NewMockCategoryUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockCategoryUsecase(t mocks.TestingT) *MockCategoryUsecase {
	m := &MockCategoryUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryUsecase) Create(ctx context.Context, title string) (*entity.Category, error) {
	args := m.Called(ctx, title)

	return mocks.Result[*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryUsecase) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)

	return mocks.Result[[]*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryUsecase) Delete(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.Category](args, 0), args.Error(1)
}

// MockProductUsecase is a mock of usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

// NewMockProductUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockProductUsecase(t mocks.TestingT) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductUsecase) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.ProductView, error) {
	args := m.Called(ctx, input)

	return mocks.Result[*entity.ProductView](args, 0), args.Error(1)
}

func (m *MockProductUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.ProductView, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.ProductView](args, 0), args.Error(1)
}

func (m *MockProductUsecase) List(ctx context.Context, page int) ([]*entity.ProductView, error) {
	args := m.Called(ctx, page)

	return mocks.Result[[]*entity.ProductView](args, 0), args.Error(1)
}

func (m *MockProductUsecase) Delete(ctx context.Context, id uuid.UUID) (*entity.ProductView, error) {
	args := m.Called(ctx, id)

	return mocks.Result[*entity.ProductView](args, 0), args.Error(1)
}

// MockBasketUsecase is a mock of usecase.BasketUsecase.
type MockBasketUsecase struct {
	mock.Mock
}

// NewMockBasketUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockBasketUsecase(t mocks.TestingT) *MockBasketUsecase {
	m := &MockBasketUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBasketUsecase) Add(ctx context.Context, user *entity.User, productID uuid.UUID) (*entity.BasketItem, error) {
	args := m.Called(ctx, user, productID)

	return mocks.Result[*entity.BasketItem](args, 0), args.Error(1)
}

func (m *MockBasketUsecase) UpdateQuantity(
	ctx context.Context,
	user *entity.User,
	productID uuid.UUID,
	delta int,
) (*entity.BasketItem, error) {
	args := m.Called(ctx, user, productID, delta)

	return mocks.Result[*entity.BasketItem](args, 0), args.Error(1)
}

func (m *MockBasketUsecase) Remove(ctx context.Context, user *entity.User, productID uuid.UUID) (*entity.BasketItem, error) {
	args := m.Called(ctx, user, productID)

	return mocks.Result[*entity.BasketItem](args, 0), args.Error(1)
}

func (m *MockBasketUsecase) Clear(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockBasketUsecase) Full(ctx context.Context, user *entity.User) (*entity.FullBasket, error) {
	args := m.Called(ctx, user)

	return mocks.Result[*entity.FullBasket](args, 0), args.Error(1)
}

// MockOrderUsecase is a mock of usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

// NewMockOrderUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockOrderUsecase(t mocks.TestingT) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderUsecase) Place(ctx context.Context, user *entity.User, postIndex int) (*entity.Order, error) {
	args := m.Called(ctx, user, postIndex)

	return mocks.Result[*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderUsecase) ListMine(
	ctx context.Context,
	user *entity.User,
	status *entity.OrderStatus,
) ([]*entity.Order, error) {
	args := m.Called(ctx, user, status)

	return mocks.Result[[]*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderUsecase) ListByStatus(ctx context.Context, status entity.OrderStatus, page int) ([]*entity.Order, error) {
	args := m.Called(ctx, status, page)

	return mocks.Result[[]*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderUsecase) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, orderID, status)

	return mocks.Result[*entity.Order](args, 0), args.Error(1)
}
