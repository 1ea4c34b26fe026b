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

// basketRepository implements repository.BasketRepository.
type basketRepository struct {
	db *gorm.DB
}

// NewBasketRepository is the constructor for basketRepository.
func NewBasketRepository(db *gorm.DB) repository.BasketRepository {
	return &basketRepository{db: db}
}

func (repo *basketRepository) Create(ctx context.Context, item *entity.BasketItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromBasketDomain(item)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isUniqueConstraintViolation(err) && violatesConstraint(err, uqBasketUserProduct) {
			return domainerrors.ErrTransactionFailed.WrapMessage("basket row created concurrently")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create basket item")
	}

	return nil
}

// FindItemForUpdate issues SELECT ... FOR UPDATE; outside a transaction the lock is released immediately.
func (repo *basketRepository) FindItemForUpdate(ctx context.Context, userID, productID uuid.UUID) (*entity.BasketItem, error) {
	var basketM model.BasketModel
	if err := repo.db.WithContext(ctx).
		Clauses(forUpdate()).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&basketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBasketItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find basket item")
	}

	return toBasketDomain(&basketM), nil
}

func (repo *basketRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BasketModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update basket item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBasketItemNotFound
	}

	return nil
}

func (repo *basketRepository) DeleteItem(ctx context.Context, userID, productID uuid.UUID) (*entity.BasketItem, error) {
	var basketM model.BasketModel
	result := repo.db.WithContext(ctx).
		Clauses(returningAll()).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&basketM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete basket item")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrBasketItemNotFound
	}

	return toBasketDomain(&basketM), nil
}

func (repo *basketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BasketItem, error) {
	var basketModels []*model.BasketModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&basketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list basket items")
	}

	items := make([]*entity.BasketItem, 0, len(basketModels))
	for _, basketM := range basketModels {
		items = append(items, toBasketDomain(basketM))
	}

	return items, nil
}

func (repo *basketRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.BasketModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear basket")
	}

	return nil
}

func toBasketDomain(data *model.BasketModel) *entity.BasketItem {
	return &entity.BasketItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}

func fromBasketDomain(data *entity.BasketItem) *model.BasketModel {
	return &model.BasketModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}
