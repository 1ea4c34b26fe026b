package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC}), orderUC
}

func newTestOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:        "665f1c2e9b1d4a0001a1b2c3",
		Basket:    &entity.FullBasket{Items: []*entity.BasketLine{}},
		Username:  "ann",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		PostIndex: 190000,
		Status:    status,
	}
}

func TestOrderHandler_Create(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		ucErr   error
		callsUC bool
		want    int
	}{
		{name: "placed", body: `{"post_index":190000}`, callsUC: true, want: http.StatusCreated},
		{name: "empty basket", body: `{"post_index":190000}`, callsUC: true, ucErr: domainerrors.ErrEmptyBasket, want: domainerrors.ErrEmptyBasket.HTTPCode()},
		{name: "missing post index", body: `{}`, want: http.StatusUnprocessableEntity},
		{name: "negative post index", body: `{"post_index":-5}`, want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderUC := newTestOrderHandler(t)
			user := newTestUser(true)
			if tt.callsUC {
				if tt.ucErr != nil {
					orderUC.On("Place", mock.Anything, user, 190000).Return(nil, tt.ucErr).Once()
				} else {
					orderUC.On("Place", mock.Anything, user, 190000).Return(newTestOrder(entity.OrderStatusProcessing), nil).Once()
				}
			}

			rec, _ := serve(t, testRoute{
				method:      http.MethodPost,
				route:       "/order/create",
				handler:     h.Create,
				body:        jsonBody(tt.body),
				contentType: echo.MIMEApplicationJSON,
				user:        user,
			})

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestOrderHandler_ListMine(t *testing.T) {
	t.Run("all statuses", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		user := newTestUser(true)
		orderUC.On("ListMine", mock.Anything, user, (*entity.OrderStatus)(nil)).
			Return([]*entity.Order{newTestOrder(entity.OrderStatusProcessing)}, nil).Once()

		rec, env := serve(t, testRoute{method: http.MethodGet, route: "/order/mine", handler: h.ListMine, user: user})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]entity.Order](t, env), 1)
	})

	t.Run("filtered by status with a space", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		user := newTestUser(true)
		orderUC.On("ListMine", mock.Anything, user, mock.MatchedBy(func(s *entity.OrderStatus) bool {
			return s != nil && *s == entity.OrderStatusShipped
		})).Return([]*entity.Order{}, nil).Once()

		rec, _ := serve(t, testRoute{
			method:  http.MethodGet,
			route:   "/order/mine",
			target:  "/order/mine?status=" + url.QueryEscape(string(entity.OrderStatusShipped)),
			handler: h.ListMine,
			user:    user,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderHandler_ListAll(t *testing.T) {
	t.Run("page 2", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.On("ListByStatus", mock.Anything, entity.OrderStatusProcessed, 2).Return([]*entity.Order{}, nil).Once()

		rec, _ := serve(t, testRoute{
			method:  http.MethodGet,
			route:   "/order/all",
			target:  "/order/all?status=Processed&page=2",
			handler: h.ListAll,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.On("ListByStatus", mock.Anything, entity.OrderStatus("Lost"), 1).
			Return(nil, domainerrors.ErrUnprocessable.WithDetails("unknown order status: Lost")).Once()

		rec, env := serve(t, testRoute{
			method:  http.MethodGet,
			route:   "/order/all",
			target:  "/order/all?status=Lost",
			handler: h.ListAll,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "unknown order status: Lost", env.Error.Details)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	const orderID = "665f1c2e9b1d4a0001a1b2c3"

	t.Run("moved forward", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.On("UpdateStatus", mock.Anything, orderID, entity.OrderStatusProcessed).
			Return(newTestOrder(entity.OrderStatusProcessed), nil).Once()

		rec, env := serve(t, testRoute{
			method:  http.MethodPut,
			route:   "/order/status",
			target:  "/order/status?order_id=" + orderID + "&new_status=Processed",
			handler: h.UpdateStatus,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entity.OrderStatusProcessed, decodeData[entity.Order](t, env).Status)
	})

	t.Run("illegal transition", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.On("UpdateStatus", mock.Anything, orderID, entity.OrderStatusProcessing).
			Return(nil, domainerrors.ErrOrderStatusTransition).Once()

		rec, _ := serve(t, testRoute{
			method:  http.MethodPut,
			route:   "/order/status",
			target:  "/order/status?order_id=" + orderID + "&new_status=Processing",
			handler: h.UpdateStatus,
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing order id", func(t *testing.T) {
		h, _ := newTestOrderHandler(t)

		rec, _ := serve(t, testRoute{
			method:  http.MethodPut,
			route:   "/order/status",
			target:  "/order/status?new_status=Processed",
			handler: h.UpdateStatus,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
