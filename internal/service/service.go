// service содержит бизнес-логику социальной сети: жизненный цикл аккаунта,
// сессии, вход через Google, профиль, друзей, посты и комментарии.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; экземпляр безопасен для
//     конкурентного использования при потокобезопасных зависимостях.
//   - Ошибки для клиента — *apierrors.Error (вид + сообщение), транспорт
//     маппит их на HTTP-статусы. Прочие ошибки считаются внутренними.
//   - Побочные задачи (письма, сверка аватара) уходят в очередь outbox
//     и не влияют на ответ.
package service

import (
	"context"
	"time"

	"github.com/pribylovaa/social-network/internal/config"
	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/google"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/outbox"
	"github.com/pribylovaa/social-network/internal/security"
	"github.com/pribylovaa/social-network/internal/storage"
)

var (
	// ErrEmailExists — email уже занят. HTTP 409.
	ErrEmailExists = apierrors.Conflict("email exists")

	// ErrEmailOtherProvider — email занят аккаунтом другого провайдера. HTTP 409.
	ErrEmailOtherProvider = apierrors.Conflict("email exists with another provider")

	// ErrInvalidEmailOrConfirmed — нет ожидающего подтверждения аккаунта. HTTP 404.
	ErrInvalidEmailOrConfirmed = apierrors.NotFound("invalid email or already confirmed")

	// ErrInvalidOTP — код не совпал. HTTP 409.
	ErrInvalidOTP = apierrors.Conflict("invalid otp")

	// ErrUnknownCredentials — системный аккаунт с таким email не найден. HTTP 404.
	ErrUnknownCredentials = apierrors.NotFound("invalid credentials")

	// ErrInvalidCredentials — неверный пароль. HTTP 400.
	ErrInvalidCredentials = apierrors.BadRequest("invalid credentials")

	// ErrEmailNotConfirmed — вход до подтверждения email. HTTP 400.
	ErrEmailNotConfirmed = apierrors.BadRequest("confirm your email before login")

	// ErrNoAccountForEmail — нет подходящего аккаунта для сброса пароля. HTTP 404.
	ErrNoAccountForEmail = apierrors.NotFound("no account associated with this email")

	// ErrNoGoogleAccount — вход через Google без регистрации. HTTP 404.
	ErrNoGoogleAccount = apierrors.NotFound("no account associated with this gmail, please signup first")

	// ErrGoogleDisabled — вход через Google не сконфигурирован. HTTP 400.
	ErrGoogleDisabled = apierrors.BadRequest("google sign-in is not enabled")

	// ErrNotAuthorizedAccount — недостаточно прав для операции. HTTP 403.
	ErrNotAuthorizedAccount = apierrors.Forbidden("not authorized account")

	// ErrProfileNotFound — профиль не найден или заморожен. HTTP 404.
	ErrProfileNotFound = apierrors.NotFound("fail to fetch user profile")

	// ErrAlreadyFrozen — аккаунт не найден или уже заморожен. HTTP 404.
	ErrAlreadyFrozen = apierrors.NotFound("user not found or already freezed")

	// ErrFrozenByOwner — аккаунт не найден или заморожен владельцем/самим администратором. HTTP 404.
	ErrFrozenByOwner = apierrors.NotFound("user not found or freezed by account owner")

	// ErrNotFrozen — аккаунт не найден или не заморожен. HTTP 404.
	ErrNotFrozen = apierrors.NotFound("user not found or not freezed")

	// ErrUserNotFound — аккаунт не найден или роль не может быть изменена. HTTP 404.
	ErrUserNotFound = apierrors.NotFound("user not found")

	// ErrInvalidRole — неизвестная роль. HTTP 400.
	ErrInvalidRole = apierrors.BadRequest("invalid role")

	// ErrFriendRequestExists — заявка между пользователями уже есть. HTTP 409.
	ErrFriendRequestExists = apierrors.Conflict("friend request already exist")

	// ErrSelfFriendRequest — заявка самому себе. HTTP 400.
	ErrSelfFriendRequest = apierrors.BadRequest("can not send friend request to yourself")

	// ErrInvalidRecipient — получатель заявки не найден. HTTP 404.
	ErrInvalidRecipient = apierrors.NotFound("invalid recipient user")

	// ErrNoMatch — сущность не найдена или не видна пользователю. HTTP 404.
	ErrNoMatch = apierrors.NotFound("fail to find matching result")

	// ErrInvalidTags — часть отмеченных пользователей не найдена или отмечен сам автор. HTTP 404.
	ErrInvalidTags = apierrors.NotFound("one or more tagged users not found or you try to tag your self")

	// ErrEmptyContent — ни текста, ни вложений. HTTP 400.
	ErrEmptyContent = apierrors.BadRequest("content or attachments are required")

	// ErrTooManyFiles — число файлов вне допустимого диапазона. HTTP 400.
	ErrTooManyFiles = apierrors.BadRequest("invalid number of files")

	// ErrInvalidAssetKey — ключ объекта вне пространства сервиса. HTTP 404.
	ErrInvalidAssetKey = apierrors.NotFound("asset not found")
)

// Hasher — хэширование паролей и OTP.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// Issuer — выпуск пар токенов и срок хранения записей об отзыве.
type Issuer interface {
	IssueCredentialPair(a *models.Account) (models.TokenPair, error)
	RevocationExpiry(c *security.Claims) time.Time
}

// Enqueuer — постановка фоновых задач.
type Enqueuer interface {
	Enqueue(ctx context.Context, t outbox.Task) bool
}

// IdentityVerifier — проверка ID-токенов Google и обмен authorization code.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*google.Identity, error)
	Exchange(ctx context.Context, code string) (string, error)
}

// Mailer — рендер и отправка писем с OTP.
type Mailer interface {
	RenderOTP(subject, name, otp string) (string, error)
	Send(ctx context.Context, to, subject, html string) error
}

// Deps — зависимости Service.
type Deps struct {
	Storage storage.Storage
	// Ledger — журнал отзыва (например, с кэшем Redis). nil — журнал Storage.
	Ledger  storage.RevokedTokens
	Objects storage.Objects
	Hasher  Hasher
	Tokens  Issuer
	Tasks   Enqueuer
	Mailer  Mailer
	// Google может быть nil: вход через Google тогда отключён.
	Google IdentityVerifier
}

// Service описывает бизнес-логику сервиса.
type Service struct {
	storage storage.Storage
	ledger  storage.RevokedTokens
	objects storage.Objects
	hasher  Hasher
	tokens  Issuer
	tasks   Enqueuer
	mailer  Mailer
	google  IdentityVerifier

	profileImageGrace time.Duration
	otp               func() (string, error)
	now               func() time.Time
}

// New создаёт новый экземпляр Service.
func New(d Deps, cfg config.S3Config) *Service {
	ledger := d.Ledger
	if ledger == nil {
		ledger = d.Storage
	}

	return &Service{
		storage:           d.Storage,
		ledger:            ledger,
		objects:           d.Objects,
		hasher:            d.Hasher,
		tokens:            d.Tokens,
		tasks:             d.Tasks,
		mailer:            d.Mailer,
		google:            d.Google,
		profileImageGrace: cfg.ProfileImageGrace,
		otp:               security.GenerateOTP,
		now:               time.Now,
	}
}

// userPath — префикс объектов пользователя в хранилище.
func userPath(id string) string { return "users/" + id }
