package main

import (
	"context"
	"log/slog"
	"os"

	"shop/config"
	"shop/internal/delivery"
	"shop/internal/delivery/api"
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router/handler"
	"shop/internal/infra/auth"
	"shop/internal/infra/cache"
	logs "shop/internal/infra/log"
	"shop/internal/infra/mail"
	"shop/internal/infra/persistence/mongo"
	"shop/internal/infra/persistence/postgres"
	"shop/internal/infra/pubsub"
	"shop/internal/infra/storage"
	"shop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		mongo.New,
		cache.New,
		storage.NewBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVerificationCodeRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewBasketRepository,
			postgres.NewTransactionManager,
			mongo.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewImageStorage,
			mail.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewVerificationService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewBasketService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewEmailHandler,
			handler.NewCatalogHandler,
			handler.NewBasketHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
