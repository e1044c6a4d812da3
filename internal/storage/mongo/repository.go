package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/social-network/internal/storage"
)

// Collection — обобщённый репозиторий над коллекцией документов типа T.
// Ошибки драйвера приводятся к storage.ErrNotFound/ErrAlreadyExists.
type Collection[T any] struct {
	coll *mongodriver.Collection
}

// NewCollection оборачивает коллекцию драйвера.
func NewCollection[T any](c *mongodriver.Collection) *Collection[T] {
	return &Collection[T]{coll: c}
}

// Insert вставляет документ. Нарушение уникального индекса — storage.ErrAlreadyExists.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("insert %s: %w", c.coll.Name(), err)
	}

	return nil
}

// FindOne возвращает первый документ по фильтру или storage.ErrNotFound.
func (c *Collection[T]) FindOne(ctx context.Context, filter any, opts ...*options.FindOneOptions) (*T, error) {
	var out T
	if err := c.coll.FindOne(ctx, filter, opts...).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("find one %s: %w", c.coll.Name(), err)
	}

	return &out, nil
}

// Find возвращает все документы по фильтру.
func (c *Collection[T]) Find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.coll.Name(), err)
	}

	return out, nil
}

// Count считает документы по фильтру.
func (c *Collection[T]) Count(ctx context.Context, filter any) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.coll.Name(), err)
	}

	return n, nil
}

// Exists сообщает, есть ли хотя бы один документ по фильтру.
func (c *Collection[T]) Exists(ctx context.Context, filter any) (bool, error) {
	err := c.coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})).Err()
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return false, nil
		}

		return false, fmt.Errorf("exists %s: %w", c.coll.Name(), err)
	}

	return true, nil
}

// UpdateOne применяет update к первому документу по фильтру.
// Отсутствие совпадения — storage.ErrNotFound.
func (c *Collection[T]) UpdateOne(ctx context.Context, filter, update any) error {
	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update %s: %w", c.coll.Name(), err)
	}

	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// FindOneAndUpdate применяет update и возвращает документ после изменения.
func (c *Collection[T]) FindOneAndUpdate(ctx context.Context, filter, update any) (*T, error) {
	var out T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("find and update %s: %w", c.coll.Name(), err)
	}

	return &out, nil
}

// DeleteOne удаляет первый документ по фильтру. Отсутствие совпадения — storage.ErrNotFound.
func (c *Collection[T]) DeleteOne(ctx context.Context, filter any) error {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.coll.Name(), err)
	}

	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteMany удаляет все документы по фильтру.
func (c *Collection[T]) DeleteMany(ctx context.Context, filter any) (int64, error) {
	res, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete many %s: %w", c.coll.Name(), err)
	}

	return res.DeletedCount, nil
}
