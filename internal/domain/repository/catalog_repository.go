package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a category id does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryExists is returned when the title is already taken.
	ErrCategoryExists = errors.New("category already exists")
	// ErrProductNotFound is returned when a product id does not exist.
	ErrProductNotFound = errors.New("product not found")
)

// CategoryRepository persists catalog categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindByTitle(ctx context.Context, title string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	// Delete removes the category and returns the row as it was.
	Delete(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindByIDs batch-reads products; missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Product, error)
	// Delete removes the product and returns the row as it was.
	Delete(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
