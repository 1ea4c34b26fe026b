package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type basketService struct {
	txManager   repository.TransactionManager
	basketRepo  repository.BasketRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// BasketServiceParams holds dependencies for BasketService, injected by Fx.
type BasketServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BasketRepo  repository.BasketRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewBasketService is the constructor for basketService.
func NewBasketService(params BasketServiceParams) usecase.BasketUsecase {
	return &basketService{
		txManager:   params.TxManager,
		basketRepo:  params.BasketRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *basketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add puts one unit of the product into the basket, creating the row on first add.
// The existing row is locked so concurrent adds of the same product serialize.
func (srv *basketService) Add(ctx context.Context, user *entity.User, productID uuid.UUID) (*entity.BasketItem, error) {
	var item *entity.BasketItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindByID(ctx, productID); err != nil {
			return mapProductError(err)
		}

		basketRepo := repoFactory.BasketRepo()

		existing, err := basketRepo.FindItemForUpdate(ctx, user.ID, productID)
		switch {
		case errors.Is(err, repository.ErrBasketItemNotFound):
			item = &entity.BasketItem{ID: uuid.New(), UserID: user.ID, ProductID: productID, Quantity: 1}

			return basketRepo.Create(ctx, item)
		case err != nil:
			return errors.Wrap(err, "failed to read basket item")
		}

		existing.Quantity++
		if err := basketRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity); err != nil {
			return errors.Wrap(err, "failed to update basket item")
		}
		item = existing

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, passThrough(err, "failed to add to basket")
	}

	srv.log(ctx).Debug("Basket item added",
		slog.Any("userID", user.ID),
		slog.Any("productID", productID),
		slog.Int("quantity", item.Quantity))

	return item, nil
}

// UpdateQuantity moves the quantity by one unit. Dropping below one is refused;
// the caller has to remove the row instead.
func (srv *basketService) UpdateQuantity(
	ctx context.Context,
	user *entity.User,
	productID uuid.UUID,
	delta int,
) (*entity.BasketItem, error) {
	if delta != 1 && delta != -1 {
		return nil, domainerrors.ErrUnprocessable.WithDetails("quantity can only change by +1 or -1")
	}

	var item *entity.BasketItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		basketRepo := repoFactory.BasketRepo()

		existing, err := basketRepo.FindItemForUpdate(ctx, user.ID, productID)
		if err != nil {
			return mapBasketError(err)
		}

		next := existing.Quantity + delta
		if next < 1 {
			return domainerrors.ErrQuantityNotAcceptable
		}

		if err := basketRepo.UpdateQuantity(ctx, existing.ID, next); err != nil {
			return mapBasketError(err)
		}
		existing.Quantity = next
		item = existing

		return nil
	})
	if err != nil {
		return nil, passThrough(err, "failed to update basket quantity")
	}

	return item, nil
}

func (srv *basketService) Remove(ctx context.Context, user *entity.User, productID uuid.UUID) (*entity.BasketItem, error) {
	item, err := srv.basketRepo.DeleteItem(ctx, user.ID, productID)
	if err != nil {
		return nil, mapBasketError(err)
	}

	return item, nil
}

func (srv *basketService) Clear(ctx context.Context, user *entity.User) error {
	if err := srv.basketRepo.Clear(ctx, user.ID); err != nil {
		return passThrough(err, "failed to clear basket")
	}

	srv.log(ctx).Debug("Basket cleared", slog.Any("userID", user.ID))

	return nil
}

// Full prices the basket with current product data.
func (srv *basketService) Full(ctx context.Context, user *entity.User) (*entity.FullBasket, error) {
	items, err := srv.basketRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, passThrough(err, "failed to list basket")
	}
	if len(items) == 0 {
		return entity.BuildFullBasket(nil, nil), nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, passThrough(err, "failed to load basket products")
	}

	return entity.BuildFullBasket(items, products), nil
}

func mapBasketError(err error) error {
	if errors.Is(err, repository.ErrBasketItemNotFound) {
		return domainerrors.ErrBasketItemNotFound
	}

	return passThrough(err, "basket operation failed")
}
