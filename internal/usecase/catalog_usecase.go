package usecase

import (
	"context"
	"io"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput carries the multipart form of a new product.
type CreateProductInput struct {
	Title       string
	Description *string
	// Price is the raw decimal text so precision can be checked before parsing.
	Price      string
	Discount   *int
	CategoryID uuid.UUID

	ImageName        string
	ImageContentType string
	Image            io.Reader
}

// CategoryUsecase manages product categories.
type CategoryUsecase interface {
	Create(ctx context.Context, title string) (*entity.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}

// ProductUsecase manages catalog products and their images.
type ProductUsecase interface {
	Create(ctx context.Context, input *CreateProductInput) (*entity.ProductView, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ProductView, error)
	List(ctx context.Context, page int) ([]*entity.ProductView, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.ProductView, error)
}
