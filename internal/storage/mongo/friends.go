package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pribylovaa/social-network/internal/models"
)

// RequestBetween ищет заявку между a и b в любом направлении.
func (m *Mongo) RequestBetween(ctx context.Context, a, b string) (*models.FriendRequest, error) {
	const op = "storage/mongo/RequestBetween"

	pair := bson.A{a, b}
	fr, err := m.friendRequests.FindOne(ctx, bson.D{
		{Key: "createdBy", Value: bson.D{{Key: "$in", Value: pair}}},
		{Key: "sendTo", Value: bson.D{{Key: "$in", Value: pair}}},
	})
	if err != nil {
		return nil, wrap(op, err)
	}

	return fr, nil
}

// CreateFriendRequest сохраняет заявку.
func (m *Mongo) CreateFriendRequest(ctx context.Context, fr *models.FriendRequest) error {
	const op = "storage/mongo/CreateFriendRequest"

	return wrap(op, m.friendRequests.Insert(ctx, fr))
}

// AcceptFriendRequest выставляет acceptedAt заявке id, адресованной recipient.
// Чужая или уже принятая заявка — storage.ErrNotFound.
func (m *Mongo) AcceptFriendRequest(ctx context.Context, id, recipient string, at time.Time) (*models.FriendRequest, error) {
	const op = "storage/mongo/AcceptFriendRequest"

	fr, err := m.friendRequests.FindOneAndUpdate(ctx,
		bson.D{
			{Key: "_id", Value: id},
			{Key: "sendTo", Value: recipient},
			{Key: "acceptedAt", Value: exists(false)},
		},
		bson.D{{Key: "$set", Value: bson.D{{Key: "acceptedAt", Value: ms(at)}}}},
	)
	if err != nil {
		return nil, wrap(op, err)
	}

	return fr, nil
}
