package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order document has the given id.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists order snapshots in the document store.
type OrderRepository interface {
	Insert(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByUsername returns every order of the user, optionally narrowed to one status.
	ListByUsername(ctx context.Context, username string, status *entity.OrderStatus) ([]*entity.Order, error)

	ListByStatus(ctx context.Context, status entity.OrderStatus, offset, limit int) ([]*entity.Order, error)

	// UpdateStatus moves the order from one status to another in a single find-and-update
	// and returns the document after the update. ErrOrderNotFound means no order with that id
	// currently holds the from status.
	UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus) (*entity.Order, error)
}
