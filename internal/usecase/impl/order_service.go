package impl

import (
	"context"
	"log/slog"
	"time"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/usecase"
	"shop/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
	basket    usecase.BasketUsecase
	pageSize  int
	now       func() time.Time
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Basket    usecase.BasketUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		basket:    params.Basket,
		pageSize:  params.Config.Pagination.PageSize,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Place snapshots the priced basket into a new order and empties the basket.
// The order lives in a different store, so the two steps are not atomic: a failed
// clear leaves the items in the basket but the order stands.
func (srv *orderService) Place(ctx context.Context, user *entity.User, postIndex int) (*entity.Order, error) {
	if postIndex <= 0 {
		return nil, domainerrors.ErrUnprocessable.WithDetails("post_index must be a positive number")
	}

	basket, err := srv.basket.Full(ctx, user)
	if err != nil {
		return nil, err
	}
	if basket.IsEmpty() {
		return nil, domainerrors.ErrEmptyBasket
	}

	order := &entity.Order{
		ID:        uuid.NewString(),
		Basket:    basket,
		Username:  user.Username,
		CreatedAt: srv.now().UTC(),
		PostIndex: postIndex,
		Status:    entity.OrderStatusProcessing,
	}

	if err := srv.orderRepo.Insert(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to save order", slog.String("username", user.Username), slog.Any("error", err))

		return nil, domainerrors.ErrOrderSaveFailed.WrapMessage(err.Error())
	}

	if err := srv.basket.Clear(ctx, user); err != nil {
		srv.log(ctx).Error("Order saved but basket not cleared",
			slog.String("orderID", order.ID),
			slog.Any("userID", user.ID),
			slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID),
		slog.String("username", user.Username),
		slog.String("total", basket.Total.StringFixed(2)))

	return order, nil
}

func (srv *orderService) ListMine(ctx context.Context, user *entity.User, status *entity.OrderStatus) ([]*entity.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, invalidStatus(*status)
	}

	orders, err := srv.orderRepo.ListByUsername(ctx, user.Username, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) ListByStatus(ctx context.Context, status entity.OrderStatus, page int) ([]*entity.Order, error) {
	if !status.IsValid() {
		return nil, invalidStatus(status)
	}

	offset, limit := util.Paginate(page, srv.pageSize)

	orders, err := srv.orderRepo.ListByStatus(ctx, status, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by status")
	}

	return orders, nil
}

// UpdateStatus applies a legal transition. The write is conditioned on the status
// that was read, so a concurrent change makes this call fail with a conflict.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, invalidStatus(status)
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrOrderStatusTransition.WithDetails(
			"cannot move from " + string(order.Status) + " to " + string(status))
	}

	updated, err := srv.orderRepo.UpdateStatus(ctx, orderID, order.Status, status)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderStatusTransition.WithDetails("order status changed concurrently")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", orderID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(status)))

	return updated, nil
}

func invalidStatus(status entity.OrderStatus) error {
	return domainerrors.ErrUnprocessable.WithDetails("unknown order status: " + string(status))
}
