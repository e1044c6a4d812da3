package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/storage"
)

// Record добавляет jti в журнал отзыва. Повторная вставка того же jti
// отклоняется уникальным индексом и считается успехом.
func (m *Mongo) Record(ctx context.Context, t models.RevokedToken) error {
	const op = "storage/mongo/Record"

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	t.CreatedAt = ms(t.CreatedAt)
	t.ExpiresAt = ms(t.ExpiresAt)

	err := m.tokens.Insert(ctx, &t)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil
	}

	return wrap(op, err)
}

// Contains сообщает, отозван ли jti.
func (m *Mongo) Contains(ctx context.Context, jti string) (bool, error) {
	const op = "storage/mongo/Contains"

	ok, err := m.tokens.Exists(ctx, bson.D{{Key: "jti", Value: jti}})
	if err != nil {
		return false, wrap(op, err)
	}

	return ok, nil
}

// RevokedToken возвращает запись журнала по jti или storage.ErrNotFound.
func (m *Mongo) RevokedToken(ctx context.Context, jti string) (*models.RevokedToken, error) {
	const op = "storage/mongo/RevokedToken"

	t, err := m.tokens.FindOne(ctx, bson.D{{Key: "jti", Value: jti}})
	if err != nil {
		return nil, wrap(op, err)
	}

	return t, nil
}

// DeleteExpired удаляет записи, срок которых истёк к моменту now.
func (m *Mongo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage/mongo/DeleteExpired"

	n, err := m.tokens.DeleteMany(ctx, bson.D{{Key: "expiresAt", Value: bson.D{{Key: "$lte", Value: ms(now)}}}})
	if err != nil {
		return 0, wrap(op, err)
	}

	return n, nil
}
