package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"
	"shop/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// imageTypes maps accepted extensions to the content type stored with the object.
var imageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	storage      service.ImageStorage
	cache        catalogCache
	pageSize     int
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Storage      service.ImageStorage
	Cache        service.CatalogCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		storage:      params.Storage,
		cache:        catalogCache{cache: params.Cache, ttl: catalogCacheTTL(params.Config)},
		pageSize:     params.Config.Pagination.PageSize,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the input, uploads the image and stores the product.
// The image is removed again if the row cannot be written.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.ProductView, error) {
	ext := strings.ToLower(path.Ext(input.ImageName))
	contentType, ok := imageTypes[ext]
	if !ok {
		return nil, domainerrors.ErrImageFormat
	}
	if strings.HasPrefix(input.ImageContentType, "image/") {
		contentType = input.ImageContentType
	}

	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	if input.Discount != nil && (*input.Discount < 0 || *input.Discount > entity.MaxDiscount) {
		return nil, domainerrors.ErrDiscountRange
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, mapCategoryError(err)
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       price,
		Discount:    input.Discount,
		CategoryID:  input.CategoryID,
	}
	key := imageKey(product.ID, ext)

	url, err := srv.storage.Upload(ctx, key, contentType, input.Image)
	if err != nil {
		srv.log(ctx).Error("Failed to upload product image", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrImageUploadFailed.WrapMessage(err.Error())
	}
	product.Image = url

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to save product", slog.Any("productID", product.ID), slog.Any("error", err))
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned image", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrProductCreationFailed.WrapMessage(err.Error())
	}

	srv.cache.invalidate(ctx, srv.log(ctx), productCachePrefix)
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("price", price.StringFixed(2)))

	return entity.NewProductView(product), nil
}

func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.ProductView, error) {
	logger := srv.log(ctx)

	var product entity.Product
	if srv.cache.load(ctx, logger, productKey(id), &product) {
		return entity.NewProductView(&product), nil
	}

	found, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err)
	}
	srv.cache.store(ctx, logger, productKey(id), found)

	return entity.NewProductView(found), nil
}

// List pages through the catalog. Discounted prices are derived on every read.
func (srv *productService) List(ctx context.Context, page int) ([]*entity.ProductView, error) {
	logger := srv.log(ctx)
	if page < 1 {
		page = 1
	}

	var products []*entity.Product
	if !srv.cache.load(ctx, logger, productPageKey(page), &products) {
		offset, limit := util.Paginate(page, srv.pageSize)

		var err error
		products, err = srv.productRepo.List(ctx, offset, limit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products")
		}
		srv.cache.store(ctx, logger, productPageKey(page), products)
	}

	views := make([]*entity.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, entity.NewProductView(product))
	}

	return views, nil
}

// Delete removes the product and, best-effort, its image.
func (srv *productService) Delete(ctx context.Context, id uuid.UUID) (*entity.ProductView, error) {
	product, err := srv.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapProductError(err)
	}

	key := imageKey(product.ID, path.Ext(product.Image))
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete product image", slog.String("key", key), slog.Any("error", err))
	}

	srv.cache.invalidate(ctx, srv.log(ctx), productCachePrefix)
	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return entity.NewProductView(product), nil
}

// parsePrice enforces the numeric(9,2) column: 0 <= price <= MaxPrice with at most two decimals.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, domainerrors.ErrUnprocessable.WithDetails("price is not a number")
	}
	if price.IsNegative() || price.GreaterThan(entity.MaxPrice) {
		return decimal.Decimal{}, domainerrors.ErrPriceNotAcceptable
	}
	if !price.Equal(price.Truncate(2)) {
		return decimal.Decimal{}, domainerrors.ErrPricePrecision
	}

	return price, nil
}

func imageKey(id uuid.UUID, ext string) string {
	return id.String() + strings.ToLower(ext)
}

func mapProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return passThrough(err, "failed to load product")
}
