package mongo

import (
	"context"
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// orderRepository implements repository.OrderRepository on a MongoDB collection.
type orderRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(collection *mongo.Collection, cfg *config.Config) repository.OrderRepository {
	return &orderRepository{
		collection: collection,
		timeout:    operationTimeout(cfg),
	}
}

func ensureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "created", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created", Value: 1}}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create order indexes")
	}

	return nil
}

func (repo *orderRepository) Insert(ctx context.Context, order *entity.Order) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	if _, err := repo.collection.InsertOne(ctx, fromOrderDomain(order)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert order")
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var doc orderDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&doc)
}

// ListByUsername returns the user's orders, newest first.
func (repo *orderRepository) ListByUsername(ctx context.Context, username string, status *entity.OrderStatus) ([]*entity.Order, error) {
	filter := bson.M{"username": username}
	if status != nil {
		filter["status"] = string(*status)
	}

	return repo.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created", Value: -1}}))
}

// ListByStatus pages through orders of one status, oldest first, so the queue is worked in arrival order.
func (repo *orderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus, offset, limit int) ([]*entity.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	return repo.find(ctx, bson.M{"status": string(status)}, opts)
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus) (*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var doc orderDocument
	err := repo.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": string(from)},
		bson.M{"$set": bson.M{"status": string(to)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}

	return toOrderDomain(&doc)
}

func (repo *orderRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	cursor, err := repo.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query orders")
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(docs))
	for i := range docs {
		order, err := toOrderDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
