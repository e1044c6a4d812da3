package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Availability — кому виден пост.
type Availability string

const (
	AvailabilityPublic  Availability = "public"
	AvailabilityOnlyMe  Availability = "only-me"
	AvailabilityFriends Availability = "friends"
)

// AllowComments — разрешены ли комментарии к посту.
type AllowComments string

const (
	CommentsAllow AllowComments = "allow"
	CommentsDeny  AllowComments = "deny"
)

// LikeAction — действие над лайком.
type LikeAction string

const (
	ActionLike   LikeAction = "like"
	ActionUnlike LikeAction = "unlike"
)

// Post — публикация пользователя.
type Post struct {
	ID             string        `bson:"_id" json:"id"`
	Content        string        `bson:"content,omitempty" json:"content,omitempty"`
	Attachments    []string      `bson:"attachments,omitempty" json:"attachments,omitempty"`
	AssetsFolderID string        `bson:"assetsFolderId" json:"assetsFolderId"`
	Availability   Availability  `bson:"availability" json:"availability"`
	AllowComments  AllowComments `bson:"allowComments" json:"allowComments"`
	Likes          []string      `bson:"likes,omitempty" json:"likes,omitempty"`
	Tags           []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedBy      string        `bson:"createdBy" json:"createdBy"`
	FreezedAt      *time.Time    `bson:"freezedAt,omitempty" json:"-"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// NewPostParams — входные данные для конструктора поста.
type NewPostParams struct {
	CreatedBy      string
	Content        string
	Attachments    []string
	AssetsFolderID string
	Availability   Availability
	AllowComments  AllowComments
	Tags           []string
}

// NewPost собирает пост с дефолтами public/allow.
func NewPost(p NewPostParams, now time.Time) *Post {
	now = now.UTC().Truncate(time.Millisecond)

	av := p.Availability
	if av == "" {
		av = AvailabilityPublic
	}

	ac := p.AllowComments
	if ac == "" {
		ac = CommentsAllow
	}

	return &Post{
		ID:             uuid.NewString(),
		Content:        strings.TrimSpace(p.Content),
		Attachments:    p.Attachments,
		AssetsFolderID: p.AssetsFolderID,
		Availability:   av,
		AllowComments:  ac,
		Tags:           p.Tags,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// VisibleTo повторяет правило видимости хранилища для уже загруженного поста.
func (p *Post) VisibleTo(viewer *Account) bool {
	if p.Availability == AvailabilityPublic {
		return true
	}

	if viewer == nil {
		return false
	}

	switch p.Availability {
	case AvailabilityOnlyMe:
		if p.CreatedBy == viewer.ID {
			return true
		}
	case AvailabilityFriends:
		if p.CreatedBy == viewer.ID || viewer.HasFriend(p.CreatedBy) {
			return true
		}
	}

	for _, t := range p.Tags {
		if t == viewer.ID {
			return true
		}
	}

	return false
}

// Comment — комментарий к посту или ответ на комментарий.
type Comment struct {
	ID          string     `bson:"_id" json:"id"`
	PostID      string     `bson:"postId" json:"postId"`
	CommentID   string     `bson:"commentId,omitempty" json:"commentId,omitempty"`
	CreatedBy   string     `bson:"createdBy" json:"createdBy"`
	Content     string     `bson:"content,omitempty" json:"content,omitempty"`
	Attachments []string   `bson:"attachments,omitempty" json:"attachments,omitempty"`
	Likes       []string   `bson:"likes,omitempty" json:"likes,omitempty"`
	Tags        []string   `bson:"tags,omitempty" json:"tags,omitempty"`
	FreezedAt   *time.Time `bson:"freezedAt,omitempty" json:"-"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// NewComment собирает комментарий; parentID пуст для корневого.
func NewComment(postID, parentID, createdBy, content string, attachments, tags []string, now time.Time) *Comment {
	now = now.UTC().Truncate(time.Millisecond)

	return &Comment{
		ID:          uuid.NewString(),
		PostID:      postID,
		CommentID:   parentID,
		CreatedBy:   createdBy,
		Content:     strings.TrimSpace(content),
		Attachments: attachments,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// FriendRequest — заявка в друзья.
type FriendRequest struct {
	ID         string     `bson:"_id" json:"id"`
	CreatedBy  string     `bson:"createdBy" json:"createdBy"`
	SendTo     string     `bson:"sendTo" json:"sendTo"`
	AcceptedAt *time.Time `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}

// NewFriendRequest собирает заявку от from к to.
func NewFriendRequest(from, to string, now time.Time) *FriendRequest {
	return &FriendRequest{
		ID:        uuid.NewString(),
		CreatedBy: from,
		SendTo:    to,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}
}

// PageParams — параметры постраничной выдачи.
type PageParams struct {
	Page int64
	Size int64
}
