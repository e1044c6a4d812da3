// storage описывает контракты хранилищ сервиса.
// Реализации: storage/mongo (документы) и storage/minio (объекты).
package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/pribylovaa/social-network/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует или не подошла под фильтр.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникального индекса.
	ErrAlreadyExists = errors.New("already exists")
)

// Accounts — операции над учётными записями.
// Все обновления — одиночные атомарные операции над документом;
// «нет совпадения по фильтру» возвращается как ErrNotFound.
type Accounts interface {
	// CreateAccount сохраняет новый аккаунт. Дубликат email — ErrAlreadyExists.
	CreateAccount(ctx context.Context, a *models.Account) error
	AccountByID(ctx context.Context, id string) (*models.Account, error)
	AccountByEmail(ctx context.Context, email string) (*models.Account, error)
	// FriendsOf возвращает краткие карточки аккаунтов по списку id.
	FriendsOf(ctx context.Context, ids []string) ([]models.Friend, error)

	// SetConfirmOTP заменяет хэш OTP подтверждения у неподтверждённого аккаунта.
	SetConfirmOTP(ctx context.Context, id, otpHash string) error
	// ConfirmEmail одним обновлением выставляет confirmedAt и снимает OTP.
	ConfirmEmail(ctx context.Context, id string, at time.Time) error
	SetResetOTP(ctx context.Context, id, otpHash string) error
	// ResetPassword меняет хэш пароля, снимает OTP сброса и сдвигает changeCredentialsAt.
	ResetPassword(ctx context.Context, id, passwordHash string, at time.Time) error
	// TouchCredentials сдвигает changeCredentialsAt (logout со всех устройств).
	TouchCredentials(ctx context.Context, id string, at time.Time) error

	// Freeze замораживает незамороженный аккаунт.
	Freeze(ctx context.Context, id, by string, at time.Time) error
	// Restore размораживает аккаунт, если его заморозил не кто-то из excludeFreezers.
	Restore(ctx context.Context, id, by string, excludeFreezers []string, at time.Time) error
	// DeleteFrozen удаляет только замороженный аккаунт.
	DeleteFrozen(ctx context.Context, id string) error
	// ChangeRole меняет роль, если текущая роль не входит в deny.
	ChangeRole(ctx context.Context, id string, role models.Role, deny []models.Role) error

	// AddFriend добавляет friendID в друзья id (идемпотентно).
	AddFriend(ctx context.Context, id, friendID string) error

	// SetProfileImage выставляет новый ключ и запоминает предыдущий во временном поле.
	SetProfileImage(ctx context.Context, id, key, previous string) error
	// CommitProfileImage снимает временное поле, если текущий ключ всё ещё key.
	CommitProfileImage(ctx context.Context, id, key string) error
	// RollbackProfileImage возвращает previous, если текущий ключ всё ещё key.
	RollbackProfileImage(ctx context.Context, id, key, previous string) error
	SetCoverImages(ctx context.Context, id string, keys []string) error
}

// RevokedTokens — журнал отзыва jti.
type RevokedTokens interface {
	// Record идемпотентно добавляет запись (повтор по jti — не ошибка).
	Record(ctx context.Context, t models.RevokedToken) error
	Contains(ctx context.Context, jti string) (bool, error)
	// RevokedToken возвращает запись по jti или ErrNotFound.
	RevokedToken(ctx context.Context, jti string) (*models.RevokedToken, error)
	// DeleteExpired удаляет записи с expiresAt <= now и возвращает их число.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Posts — публикации. viewer задаёт правило видимости.
type Posts interface {
	CreatePost(ctx context.Context, p *models.Post) error
	// VisiblePost возвращает пост, видимый viewer; requireComments — только с allowComments=allow.
	VisiblePost(ctx context.Context, postID string, viewer *models.Account, requireComments bool) (*models.Post, error)
	// SetLike добавляет/убирает лайк viewer на видимом посте.
	SetLike(ctx context.Context, postID string, viewer *models.Account, like bool) (*models.Post, error)
	// ListVisible — страница видимых постов, сначала новые.
	ListVisible(ctx context.Context, viewer *models.Account, p models.PageParams) ([]models.Post, int64, error)
}

// Comments — комментарии и ответы.
type Comments interface {
	CreateComment(ctx context.Context, c *models.Comment) error
	// CommentOnPost возвращает комментарий commentID, принадлежащий посту postID.
	CommentOnPost(ctx context.Context, postID, commentID string) (*models.Comment, error)
}

// FriendRequests — заявки в друзья.
type FriendRequests interface {
	// RequestBetween ищет заявку между a и b в любом направлении.
	RequestBetween(ctx context.Context, a, b string) (*models.FriendRequest, error)
	CreateFriendRequest(ctx context.Context, fr *models.FriendRequest) error
	// AcceptFriendRequest принимает заявку, адресованную recipient и ещё не принятую.
	AcceptFriendRequest(ctx context.Context, id, recipient string, at time.Time) (*models.FriendRequest, error)
}

// Storage — документное хранилище сервиса целиком (реализация: storage/mongo).
type Storage interface {
	Accounts
	RevokedTokens
	Posts
	Comments
	FriendRequests
}

// Upload — файл для загрузки в объектное хранилище.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// PresignedUpload — данные presigned PUT для клиента.
type PresignedUpload struct {
	URL     string        `json:"url"`
	Key     string        `json:"key"`
	Expires time.Duration `json:"-"`
}

// Objects — объектное хранилище медиа. Ключи строятся как
// "<app>/<path>/<uuid>_<name>".
type Objects interface {
	Upload(ctx context.Context, path string, f Upload) (string, error)
	UploadMany(ctx context.Context, path string, files []Upload) ([]string, error)
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix удаляет все объекты под "<app>/<path>".
	DeletePrefix(ctx context.Context, path string) error
	PresignUpload(ctx context.Context, path, originalName, contentType string) (*PresignedUpload, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	// Exists сообщает, загружен ли объект.
	Exists(ctx context.Context, key string) (bool, error)
}
