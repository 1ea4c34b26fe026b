// Package mongo stores order snapshots in a MongoDB collection.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"shop/config"
	"shop/internal/domain/lifecycle"
	"shop/internal/errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

const defaultCollection = "orders"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the orders collection.
// The client is pinged on start and disconnected on stop.
func New(params Params) (*mongo.Collection, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo configuration is missing")
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	name := cfg.Collection
	if name == "" {
		name = defaultCollection
	}
	collection := client.Database(cfg.Database).Collection(name)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, collection); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connected",
				slog.String("database", cfg.Database),
				slog.String("collection", name),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return collection, nil
}

// operationTimeout bounds single repository calls when the config sets no client timeout.
func operationTimeout(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.Mongo != nil && cfg.Mongo.Timeout > 0 {
		return cfg.Mongo.Timeout
	}

	return lifecycle.DefaultTimeout
}
