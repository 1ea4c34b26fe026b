package impl

import (
	"context"
	"testing"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	mockRepo "shop/internal/mocks/repository"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   *orderService
	orderRepo *mockRepo.MockOrderRepository
	basket    *mockUsecase.MockBasketUsecase
	user      *entity.User
	now       time.Time
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	basket := mockUsecase.NewMockBasketUsecase(t)
	now := time.Date(2026, 5, 4, 10, 30, 0, 0, time.FixedZone("UTC+3", 3*3600))

	svc := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		Basket:    basket,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*orderService)
	svc.now = func() time.Time { return now }

	return orderServiceFixtures{
		service:   svc,
		orderRepo: orderRepo,
		basket:    basket,
		user:      &entity.User{ID: uuid.New(), Username: "alice"},
		now:       now,
	}
}

func sampleBasket() *entity.FullBasket {
	product := &entity.Product{ID: uuid.New(), Title: "Book", Price: decimal.RequireFromString("10.00")}

	return entity.BuildFullBasket(
		[]*entity.BasketItem{{ID: uuid.New(), ProductID: product.ID, Quantity: 2}},
		[]*entity.Product{product},
	)
}

func TestOrderService_Place_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	basket := sampleBasket()

	fx.basket.On("Full", ctx, fx.user).Return(basket, nil)
	fx.orderRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.basket.On("Clear", ctx, fx.user).Return(nil)

	order, err := fx.service.Place(ctx, fx.user, 123456)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.Equal(t, "alice", order.Username)
	assert.Equal(t, 123456, order.PostIndex)
	assert.Equal(t, fx.now.UTC(), order.CreatedAt)
	assert.Equal(t, time.UTC, order.CreatedAt.Location())
	assert.Equal(t, "20.00", order.Basket.Total.StringFixed(2))
	assert.NotEmpty(t, order.ID)
}

func TestOrderService_Place_ClearFailureKeepsOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.basket.On("Full", ctx, fx.user).Return(sampleBasket(), nil)
	fx.orderRepo.On("Insert", ctx, mock.Anything).Return(nil)
	fx.basket.On("Clear", ctx, fx.user).Return(errors.New("db down"))

	order, err := fx.service.Place(ctx, fx.user, 1)

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Place_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("bad post index", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.Place(ctx, fx.user, 0)
		assert.ErrorIs(t, err, domainerrors.ErrUnprocessable)
	})

	t.Run("empty basket", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.basket.On("Full", ctx, fx.user).Return(entity.BuildFullBasket(nil, nil), nil)

		_, err := fx.service.Place(ctx, fx.user, 1)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyBasket)
	})

	t.Run("insert fails and basket is kept", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.basket.On("Full", ctx, fx.user).Return(sampleBasket(), nil)
		fx.orderRepo.On("Insert", ctx, mock.Anything).Return(errors.New("mongo unreachable"))

		_, err := fx.service.Place(ctx, fx.user, 1)
		assert.ErrorIs(t, err, domainerrors.ErrOrderSaveFailed)
		fx.basket.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	})
}

func TestOrderService_ListMine(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	status := entity.OrderStatusShipped
	orders := []*entity.Order{{ID: "o1", Status: status}}

	fx.orderRepo.On("ListByUsername", ctx, "alice", &status).Return(orders, nil)

	got, err := fx.service.ListMine(ctx, fx.user, &status)
	require.NoError(t, err)
	assert.Equal(t, orders, got)

	bogus := entity.OrderStatus("Lost")
	_, err = fx.service.ListMine(ctx, fx.user, &bogus)
	assert.ErrorIs(t, err, domainerrors.ErrUnprocessable)
}

func TestOrderService_ListByStatus_Paginates(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.On("ListByStatus", ctx, entity.OrderStatusProcessing, 0, 10).Return([]*entity.Order{}, nil)

	got, err := fx.service.ListByStatus(ctx, entity.OrderStatusProcessing, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("forward move", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.On("FindByID", ctx, "o1").Return(&entity.Order{ID: "o1", Status: entity.OrderStatusProcessing}, nil)
		fx.orderRepo.On("UpdateStatus", ctx, "o1", entity.OrderStatusProcessing, entity.OrderStatusShipped).
			Return(&entity.Order{ID: "o1", Status: entity.OrderStatusShipped}, nil)

		order, err := fx.service.UpdateStatus(ctx, "o1", entity.OrderStatusShipped)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusShipped, order.Status)
	})

	t.Run("backward move", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.On("FindByID", ctx, "o1").Return(&entity.Order{ID: "o1", Status: entity.OrderStatusDelivered}, nil)

		_, err := fx.service.UpdateStatus(ctx, "o1", entity.OrderStatusProcessed)
		assert.ErrorIs(t, err, domainerrors.ErrOrderStatusTransition)
	})

	t.Run("concurrent change", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.On("FindByID", ctx, "o1").Return(&entity.Order{ID: "o1", Status: entity.OrderStatusProcessing}, nil)
		fx.orderRepo.On("UpdateStatus", ctx, "o1", entity.OrderStatusProcessing, entity.OrderStatusCancelled).
			Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.UpdateStatus(ctx, "o1", entity.OrderStatusCancelled)
		assert.ErrorIs(t, err, domainerrors.ErrOrderStatusTransition)
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.On("FindByID", ctx, "nope").Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.UpdateStatus(ctx, "nope", entity.OrderStatusProcessed)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateStatus(ctx, "o1", entity.OrderStatus("Lost"))
		assert.ErrorIs(t, err, domainerrors.ErrUnprocessable)
	})
}
