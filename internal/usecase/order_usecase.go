package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// OrderUsecase turns baskets into orders and tracks their status.
type OrderUsecase interface {
	Place(ctx context.Context, user *entity.User, postIndex int) (*entity.Order, error)
	ListMine(ctx context.Context, user *entity.User, status *entity.OrderStatus) ([]*entity.Order, error)
	ListByStatus(ctx context.Context, status entity.OrderStatus, page int) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)
}
