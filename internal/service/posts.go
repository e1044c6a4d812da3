package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/storage"
)

const (
	// MaxAttachments — предел вложений поста или комментария.
	MaxAttachments = 2
	// MaxTags — предел отмеченных пользователей.
	MaxTags = 10

	minContentLen = 2
	maxContentLen = 500000

	// tagCheckLimit — число одновременных запросов при проверке отметок.
	tagCheckLimit = 4
)

// CreatePostInput — данные нового поста.
type CreatePostInput struct {
	Content       string
	Availability  models.Availability
	AllowComments models.AllowComments
	Tags          []string
	Attachments   []storage.Upload
}

// CreatePost проверяет отметки, загружает вложения в папку поста и сохраняет его.
// Если пост не сохранился, загруженные вложения удаляются.
func (s *Service) CreatePost(ctx context.Context, actor *models.Account, in CreatePostInput) (*models.Post, error) {
	const op = "service.posts.CreatePost"

	if err := checkBody(in.Content, len(in.Attachments)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.checkTags(ctx, actor.ID, in.Tags); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	folder := ulid.MustNew(ulid.Timestamp(s.now()), rand.Reader).String()

	var keys []string
	if len(in.Attachments) > 0 {
		var err error
		keys, err = s.objects.UploadMany(ctx, fmt.Sprintf("%s/post/%s", userPath(actor.ID), folder), in.Attachments)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	p := models.NewPost(models.NewPostParams{
		CreatedBy:      actor.ID,
		Content:        in.Content,
		Attachments:    keys,
		AssetsFolderID: folder,
		Availability:   in.Availability,
		AllowComments:  in.AllowComments,
		Tags:           in.Tags,
	}, s.now())

	if err := s.storage.CreatePost(ctx, p); err != nil {
		s.cleanup(ctx, op, keys)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// LikePost ставит или снимает лайк actor на видимом ему посте.
func (s *Service) LikePost(ctx context.Context, actor *models.Account, postID string, action models.LikeAction) (*models.Post, error) {
	const op = "service.posts.LikePost"

	p, err := s.storage.SetLike(ctx, postID, actor, action != models.ActionUnlike)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNoMatch)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// PostsPage — страница ленты.
type PostsPage struct {
	Posts []models.Post `json:"posts"`
	Total int64         `json:"total"`
	Page  int64         `json:"page"`
	Size  int64         `json:"size"`
}

// ListPosts возвращает страницу постов, видимых actor, сначала новые.
func (s *Service) ListPosts(ctx context.Context, actor *models.Account, page models.PageParams) (*PostsPage, error) {
	const op = "service.posts.ListPosts"

	posts, total, err := s.storage.ListVisible(ctx, actor, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &PostsPage{Posts: posts, Total: total, Page: page.Page, Size: page.Size}, nil
}

// checkBody требует текст допустимой длины или хотя бы одно вложение.
func checkBody(content string, attachments int) error {
	if attachments > MaxAttachments {
		return ErrTooManyFiles
	}

	content = strings.TrimSpace(content)
	if content == "" {
		if attachments == 0 {
			return ErrEmptyContent
		}

		return nil
	}

	if n := utf8.RuneCountInString(content); n < minContentLen || n > maxContentLen {
		return ErrEmptyContent.WithCause(fmt.Sprintf("content length must be between %d and %d", minContentLen, maxContentLen))
	}

	return nil
}

// checkTags проверяет, что все отмеченные аккаунты существуют, не заморожены
// и не совпадают с автором. Запросы идут параллельно.
func (s *Service) checkTags(ctx context.Context, authorID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	if len(tags) > MaxTags {
		return ErrInvalidTags.WithCause(fmt.Sprintf("at most %d tags", MaxTags))
	}

	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == authorID {
			return ErrInvalidTags
		}

		if _, dup := seen[t]; dup {
			return ErrInvalidTags.WithCause("duplicate tags")
		}
		seen[t] = struct{}{}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tagCheckLimit)

	for _, id := range tags {
		g.Go(func() error {
			acc, err := s.storage.AccountByID(gctx, id)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return ErrInvalidTags
				}

				return err
			}

			if acc.Frozen() {
				return ErrInvalidTags
			}

			return nil
		})
	}

	return g.Wait()
}
