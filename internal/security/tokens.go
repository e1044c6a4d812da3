package security

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/social-network/internal/config"
	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/pkg/log"
	"github.com/pribylovaa/social-network/internal/storage"
)

const bearerScheme = "Bearer"

var (
	// ErrMissingTokenParts — заголовок не в формате "<scheme> <token>". HTTP 401.
	ErrMissingTokenParts = apierrors.Unauthorized("missing token parts")

	// ErrInvalidScheme — схема авторизации не Bearer. HTTP 401.
	ErrInvalidScheme = apierrors.Unauthorized("invalid scheme")

	// ErrInvalidToken — подпись/срок/обязательные claims не прошли проверку. HTTP 401.
	ErrInvalidToken = apierrors.Unauthorized("invalid or expired token")

	// ErrStaleCredentials — jti отозван или токен выпущен до смены учётных данных. HTTP 401.
	ErrStaleCredentials = apierrors.Unauthorized("stale credentials")

	// ErrAccountNotRegistered — subject токена не найден в хранилище. HTTP 400.
	ErrAccountNotRegistered = apierrors.BadRequest("account not registered")
)

// AccountLookup — поиск аккаунта по subject токена.
// При отсутствии записи возвращает storage.ErrNotFound.
type AccountLookup interface {
	AccountByID(ctx context.Context, id string) (*models.Account, error)
}

// RevocationLedger — проверка jti по журналу отзыва.
type RevocationLedger interface {
	Contains(ctx context.Context, jti string) (bool, error)
}

// Claims — полезная нагрузка токенов сервиса.
// IssuedAtMs дублирует iat с точностью до миллисекунды: iat в JWT целочисленный.
type Claims struct {
	Level      models.SignatureLevel `json:"lvl,omitempty"`
	Kind       models.TokenKind      `json:"typ,omitempty"`
	IssuedAtMs int64                 `json:"iat_ms,omitempty"`
	jwt.RegisteredClaims
}

// Issued — момент выпуска токена; без iat_ms используется iat.
func (c *Claims) Issued() time.Time {
	if c.IssuedAtMs > 0 {
		return time.UnixMilli(c.IssuedAtMs).UTC()
	}
	if c.IssuedAt != nil {
		return c.IssuedAt.Time.UTC()
	}

	return time.Time{}
}

// Decoded — результат успешной проверки токена.
type Decoded struct {
	Account *models.Account
	Claims  *Claims
	Level   models.SignatureLevel
}

// SignOptions — параметры подписи одиночного токена.
type SignOptions struct {
	Subject  string
	Level    models.SignatureLevel
	Kind     models.TokenKind
	Secret   string
	TTL      time.Duration
	JTI      string
	IssuedAt time.Time
}

// Tokens выпускает и проверяет пары access/refresh.
// Экземпляр безопасен для конкурентного использования.
type Tokens struct {
	secrets    config.Secrets
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
	accounts   AccountLookup
	ledger     RevocationLedger
	now        func() time.Time
}

// Option настраивает Tokens.
type Option func(*Tokens)

// WithClock подменяет источник времени (для тестов и детерминированных сценариев).
func WithClock(now func() time.Time) Option {
	return func(t *Tokens) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTokens создаёт Tokens поверх конфигурации, поиска аккаунтов и журнала отзыва.
func NewTokens(cfg config.AuthConfig, accounts AccountLookup, ledger RevocationLedger, opts ...Option) *Tokens {
	t := &Tokens{
		secrets:    cfg.Secrets(),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		issuer:     cfg.Issuer,
		accounts:   accounts,
		ledger:     ledger,
		now:        time.Now,
	}

	for _, o := range opts {
		o(t)
	}

	return t
}

// RevocationExpiry — срок хранения записи об отзыве jti: до конца жизни refresh-токена пары.
func (t *Tokens) RevocationExpiry(c *Claims) time.Time {
	if c == nil || c.IssuedAt == nil {
		return t.now().UTC().Add(t.refreshTTL)
	}

	return c.IssuedAt.Time.UTC().Add(t.refreshTTL)
}

// secretFor выбирает секрет по уровню и назначению. Неизвестный уровень — Bearer.
func (t *Tokens) secretFor(level models.SignatureLevel, kind models.TokenKind) string {
	pair := t.secrets.Bearer
	if level == models.LevelSystem {
		pair = t.secrets.System
	}

	if kind == models.TokenRefresh {
		return pair.Refresh
	}

	return pair.Access
}

// IssueSignedToken подписывает один токен HS256.
func (t *Tokens) IssueSignedToken(o SignOptions) (string, time.Time, error) {
	const op = "security.tokens.IssueSignedToken"

	iat := o.IssuedAt
	if iat.IsZero() {
		iat = t.now()
	}
	iat = iat.UTC()
	exp := iat.Add(o.TTL)

	claims := Claims{
		Level:      o.Level,
		Kind:       o.Kind,
		IssuedAtMs: iat.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   o.Subject,
			Issuer:    t.issuer,
			ID:        o.JTI,
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(o.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, exp, nil
}

// IssueCredentialPair выпускает пару с общим jti. Уровень подписи берётся из роли.
func (t *Tokens) IssueCredentialPair(a *models.Account) (models.TokenPair, error) {
	const op = "security.tokens.IssueCredentialPair"

	if a == nil || a.ID == "" {
		return models.TokenPair{}, fmt.Errorf("%s: empty account", op)
	}

	level := models.LevelForRole(a.Role)
	jti := uuid.NewString()
	now := t.now()

	access, accessExp, err := t.IssueSignedToken(SignOptions{
		Subject:  a.ID,
		Level:    level,
		Kind:     models.TokenAccess,
		Secret:   t.secretFor(level, models.TokenAccess),
		TTL:      t.accessTTL,
		JTI:      jti,
		IssuedAt: now,
	})
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	refresh, refreshExp, err := t.IssueSignedToken(SignOptions{
		Subject:  a.ID,
		Level:    level,
		Kind:     models.TokenRefresh,
		Secret:   t.secretFor(level, models.TokenRefresh),
		TTL:      t.refreshTTL,
		JTI:      jti,
		IssuedAt: now,
	})
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// Decode проверяет заголовок Authorization и возвращает аккаунт, claims и уровень.
//
// Порядок проверок:
//  1. формат "<scheme> <token>";
//  2. схема Bearer;
//  3. чтение lvl без проверки подписи (секрет зависит от уровня);
//  4. подпись и срок по секрету (уровень, kind), совпадение typ;
//  5. наличие sub, iat и jti;
//  6. jti не в журнале отзыва;
//  7. аккаунт существует;
//  8. токен выпущен не раньше changeCredentialsAt (сравнение в миллисекундах,
//     отсутствие метки — токен не устарел).
func (t *Tokens) Decode(ctx context.Context, header string, kind models.TokenKind) (*Decoded, error) {
	const op = "security.tokens.Decode"

	lg := log.From(ctx)

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingTokenParts)
	}

	if parts[0] != bearerScheme {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidScheme)
	}
	raw := parts[1]

	var peek Claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &peek); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	level := peek.Level
	if level != models.LevelSystem {
		level = models.LevelBearer
	}

	secret := []byte(t.secretFor(level, kind))

	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
		jwt.WithLeeway(5*time.Second),
	)
	if err != nil || !tok.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			lg.Debug("token_expired", slog.String("op", op))
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.Kind != "" && claims.Kind != kind {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.Subject == "" || claims.IssuedAt == nil || claims.ID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	revoked, err := t.ledger.Contains(ctx, claims.ID)
	if err != nil {
		lg.Error("revocation_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if revoked {
		lg.Warn("token_revoked",
			slog.String("op", op),
			slog.String("user_id", claims.Subject),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrStaleCredentials)
	}

	acc, err := t.accounts.AccountByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrAccountNotRegistered)
		}

		lg.Error("account_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if acc.ChangeCredentialsAt != nil && acc.ChangeCredentialsAt.UnixMilli() > claims.Issued().UnixMilli() {
		lg.Warn("token_stale",
			slog.String("op", op),
			slog.String("user_id", acc.ID),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrStaleCredentials)
	}

	return &Decoded{Account: acc, Claims: &claims, Level: level}, nil
}
