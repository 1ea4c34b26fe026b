package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productRepository implements repository.ProductRepository over the 'store' table.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrDiscountRange
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return toProductDomains(productModels), nil
}

func (repo *productRepository) List(ctx context.Context, offset, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	result := repo.db.WithContext(ctx).
		Clauses(returningAll()).
		Where("id = ?", id).
		Delete(&productM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&productM), nil
}

// --- Mapper Functions ---

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Discount:    data.Discount,
		CategoryID:  data.CategoryID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Discount:    data.Discount,
		CategoryID:  data.CategoryID,
		CreatedAt:   data.CreatedAt,
	}
}
