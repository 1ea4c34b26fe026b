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

// categoryRepository implements repository.CategoryRepository.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	categoryM := &model.CategoryModel{ID: category.ID, Title: category.Title}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) && violatesConstraint(err, uqCategoriesTitle) {
			return repository.ErrCategoryExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = categoryM.CreatedAt

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findBy(ctx, "id = ?", id)
}

func (repo *categoryRepository) FindByTitle(ctx context.Context, title string) (*entity.Category, error) {
	return repo.findBy(ctx, "title = ?", title)
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("title ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// Delete removes the category; its products go with it through the foreign key cascade.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	result := repo.db.WithContext(ctx).
		Clauses(returningAll()).
		Where("id = ?", id).
		Delete(&categoryM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCategoryNotFound
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) findBy(ctx context.Context, cond string, arg any) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:        data.ID,
		Title:     data.Title,
		CreatedAt: data.CreatedAt,
	}
}
