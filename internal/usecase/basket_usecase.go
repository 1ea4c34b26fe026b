package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// BasketUsecase manages the basket of the authenticated user.
type BasketUsecase interface {
	Add(ctx context.Context, user *entity.User, productID uuid.UUID) (*entity.BasketItem, error)
	// UpdateQuantity applies delta, which is +1 or -1, to the row's quantity.
	UpdateQuantity(ctx context.Context, user *entity.User, productID uuid.UUID, delta int) (*entity.BasketItem, error)
	Remove(ctx context.Context, user *entity.User, productID uuid.UUID) (*entity.BasketItem, error)
	Clear(ctx context.Context, user *entity.User) error
	Full(ctx context.Context, user *entity.User) (*entity.FullBasket, error)
}
