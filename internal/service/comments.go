package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/storage"
)

// CommentInput — данные комментария или ответа.
type CommentInput struct {
	Content     string
	Tags        []string
	Attachments []storage.Upload
}

// CreateComment добавляет комментарий к видимому посту с открытыми комментариями.
func (s *Service) CreateComment(ctx context.Context, actor *models.Account, postID string, in CommentInput) (*models.Comment, error) {
	const op = "service.comments.CreateComment"

	c, err := s.comment(ctx, actor, postID, "", in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// ReplyOnComment добавляет ответ на комментарий commentID того же поста.
func (s *Service) ReplyOnComment(ctx context.Context, actor *models.Account, postID, commentID string, in CommentInput) (*models.Comment, error) {
	const op = "service.comments.ReplyOnComment"

	if _, err := s.storage.CommentOnPost(ctx, postID, commentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNoMatch)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.comment(ctx, actor, postID, commentID, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Service) comment(ctx context.Context, actor *models.Account, postID, parentID string, in CommentInput) (*models.Comment, error) {
	if err := checkBody(in.Content, len(in.Attachments)); err != nil {
		return nil, err
	}

	post, err := s.storage.VisiblePost(ctx, postID, actor, true)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoMatch
		}

		return nil, err
	}

	if err := s.checkTags(ctx, actor.ID, in.Tags); err != nil {
		return nil, err
	}

	var keys []string
	if len(in.Attachments) > 0 {
		path := fmt.Sprintf("%s/post/%s/comments", userPath(post.CreatedBy), post.AssetsFolderID)
		keys, err = s.objects.UploadMany(ctx, path, in.Attachments)
		if err != nil {
			return nil, err
		}
	}

	c := models.NewComment(postID, parentID, actor.ID, in.Content, keys, in.Tags, s.now())
	if err := s.storage.CreateComment(ctx, c); err != nil {
		s.cleanup(ctx, "service.comments.comment", keys)
		return nil, err
	}

	return c, nil
}
