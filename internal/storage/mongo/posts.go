package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/social-network/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pageOrDefault приводит параметры страницы к page >= 1, size в [1, maxPageSize].
func pageOrDefault(p models.PageParams) (skip, limit int64) {
	page, size := p.Page, p.Size
	if page < 1 {
		page = 1
	}

	if size <= 0 {
		size = defaultPageSize
	}

	if size > maxPageSize {
		size = maxPageSize
	}

	return (page - 1) * size, size
}

// visibility — условие $or для постов, видимых viewer:
// public; only-me своего автора; friends, если автор — viewer или его друг;
// любой пост, где viewer отмечен.
func visibility(viewer *models.Account) bson.A {
	circle := append([]string{viewer.ID}, viewer.Friends...)

	return bson.A{
		bson.D{{Key: "availability", Value: models.AvailabilityPublic}},
		bson.D{{Key: "availability", Value: models.AvailabilityOnlyMe}, {Key: "createdBy", Value: viewer.ID}},
		bson.D{{Key: "availability", Value: models.AvailabilityFriends}, {Key: "createdBy", Value: bson.D{{Key: "$in", Value: circle}}}},
		bson.D{{Key: "tags", Value: viewer.ID}},
	}
}

func visibleFilter(viewer *models.Account) bson.D {
	return bson.D{
		{Key: "freezedAt", Value: exists(false)},
		{Key: "$or", Value: visibility(viewer)},
	}
}

// CreatePost сохраняет пост.
func (m *Mongo) CreatePost(ctx context.Context, p *models.Post) error {
	const op = "storage/mongo/CreatePost"

	return wrap(op, m.posts.Insert(ctx, p))
}

// VisiblePost возвращает пост, видимый viewer. requireComments добавляет allowComments=allow.
func (m *Mongo) VisiblePost(ctx context.Context, postID string, viewer *models.Account, requireComments bool) (*models.Post, error) {
	const op = "storage/mongo/VisiblePost"

	filter := append(bson.D{{Key: "_id", Value: postID}}, visibleFilter(viewer)...)
	if requireComments {
		filter = append(filter, bson.E{Key: "allowComments", Value: models.CommentsAllow})
	}

	p, err := m.posts.FindOne(ctx, filter)
	if err != nil {
		return nil, wrap(op, err)
	}

	return p, nil
}

// SetLike добавляет или убирает лайк viewer на видимом посте.
func (m *Mongo) SetLike(ctx context.Context, postID string, viewer *models.Account, like bool) (*models.Post, error) {
	const op = "storage/mongo/SetLike"

	operator := "$addToSet"
	if !like {
		operator = "$pull"
	}

	filter := append(bson.D{{Key: "_id", Value: postID}}, visibleFilter(viewer)...)
	update := bson.D{
		{Key: operator, Value: bson.D{{Key: "likes", Value: viewer.ID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: ms(time.Now())}}},
	}

	p, err := m.posts.FindOneAndUpdate(ctx, filter, update)
	if err != nil {
		return nil, wrap(op, err)
	}

	return p, nil
}

// ListVisible возвращает страницу видимых постов (сначала новые) и общее число.
func (m *Mongo) ListVisible(ctx context.Context, viewer *models.Account, p models.PageParams) ([]models.Post, int64, error) {
	const op = "storage/mongo/ListVisible"

	skip, limit := pageOrDefault(p)
	filter := visibleFilter(viewer)

	total, err := m.posts.Count(ctx, filter)
	if err != nil {
		return nil, 0, wrap(op, err)
	}

	items, err := m.posts.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit),
	)
	if err != nil {
		return nil, 0, wrap(op, err)
	}

	return items, total, nil
}
