package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBasketItemNotFound is returned when the user has no row for the product.
var ErrBasketItemNotFound = errors.New("basket item not found")

// BasketRepository persists per-(user, product) basket rows.
type BasketRepository interface {
	Create(ctx context.Context, item *entity.BasketItem) error

	// FindItemForUpdate reads the row and locks it until the surrounding transaction ends.
	FindItemForUpdate(ctx context.Context, userID, productID uuid.UUID) (*entity.BasketItem, error)

	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// DeleteItem removes the row and returns it as it was.
	DeleteItem(ctx context.Context, userID, productID uuid.UUID) (*entity.BasketItem, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BasketItem, error)

	// Clear removes every row of the user; an empty basket is not an error.
	Clear(ctx context.Context, userID uuid.UUID) error
}
