package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pribylovaa/social-network/internal/models"
)

// CreateComment сохраняет комментарий или ответ.
func (m *Mongo) CreateComment(ctx context.Context, c *models.Comment) error {
	const op = "storage/mongo/CreateComment"

	return wrap(op, m.comments.Insert(ctx, c))
}

// CommentOnPost возвращает незамороженный комментарий commentID поста postID.
func (m *Mongo) CommentOnPost(ctx context.Context, postID, commentID string) (*models.Comment, error) {
	const op = "storage/mongo/CommentOnPost"

	c, err := m.comments.FindOne(ctx, bson.D{
		{Key: "_id", Value: commentID},
		{Key: "postId", Value: postID},
		{Key: "freezedAt", Value: exists(false)},
	})
	if err != nil {
		return nil, wrap(op, err)
	}

	return c, nil
}
