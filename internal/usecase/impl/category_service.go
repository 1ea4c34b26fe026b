package impl

import (
	"context"
	"log/slog"
	"strings"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        catalogCache
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Cache        service.CatalogCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		cache:        catalogCache{cache: params.Cache, ttl: catalogCacheTTL(params.Config)},
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) Create(ctx context.Context, title string) (*entity.Category, error) {
	title = strings.TrimSpace(title)

	if _, err := srv.categoryRepo.FindByTitle(ctx, title); err == nil {
		return nil, domainerrors.ErrCategoryExists
	} else if !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(err, "failed to check category title")
	}

	category := &entity.Category{ID: uuid.New(), Title: title}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryExists) {
			return nil, domainerrors.ErrCategoryExists
		}

		return nil, passThrough(err, "failed to create category")
	}

	srv.cache.invalidate(ctx, srv.log(ctx), categoryCachePrefix)
	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("title", title))

	return category, nil
}

func (srv *categoryService) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCategoryError(err)
	}

	return category, nil
}

// List serves every category, from cache when possible.
func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	logger := srv.log(ctx)

	var categories []*entity.Category
	if srv.cache.load(ctx, logger, categoryListKey(), &categories) {
		return categories, nil
	}

	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	srv.cache.store(ctx, logger, categoryListKey(), categories)

	return categories, nil
}

// Delete removes the category. Its products are removed by the database, so both caches are dropped.
// TODO: remove the images of cascaded products from the bucket as well.
func (srv *categoryService) Delete(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapCategoryError(err)
	}

	srv.cache.invalidate(ctx, srv.log(ctx), categoryCachePrefix, productCachePrefix)
	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return category, nil
}

func mapCategoryError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}

	return passThrough(err, "failed to load category")
}
