// google проверяет ID-токены Google и обменивает authorization code на ID-токен.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"

	"github.com/pribylovaa/social-network/internal/config"
	apierrors "github.com/pribylovaa/social-network/internal/errors"
)

var (
	// ErrUnverified — токен не прошёл проверку или e-mail не подтверждён. HTTP 400.
	ErrUnverified = apierrors.BadRequest("failed to verify google account")

	// ErrMissingIDToken — ответ обмена кода не содержит id_token. HTTP 400.
	ErrMissingIDToken = apierrors.BadRequest("google response has no id token")
)

var issuers = []string{"accounts.google.com", "https://accounts.google.com"}

// Identity — проверенные данные аккаунта Google.
type Identity struct {
	Subject    string
	Email      string
	Name       string
	GivenName  string
	FamilyName string
	Picture    string
}

// Claims — полезная нагрузка ID-токена Google.
type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

// Verifier проверяет ID-токены по JWKS Google и обменивает коды OAuth2.
type Verifier struct {
	keyfunc   jwt.Keyfunc
	clientIDs []string
	oauth     *oauth2.Config
	now       func() time.Time
	close     func()
}

// New загружает JWKS Google и запускает его фоновое обновление.
// Обновление останавливается по отмене ctx или через Close.
func New(ctx context.Context, cfg config.GoogleConfig, logger *slog.Logger) (*Verifier, error) {
	const op = "google.New"

	if logger == nil {
		logger = slog.Default()
	}

	jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
		Ctx: ctx,
		RefreshErrorHandler: func(err error) {
			logger.Warn("google_jwks_refresh_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		},
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v := NewWithKeyfunc(jwks.Keyfunc, cfg)
	v.close = jwks.EndBackground

	return v, nil
}

// NewWithKeyfunc создаёт Verifier с заданной функцией выбора ключа.
func NewWithKeyfunc(kf jwt.Keyfunc, cfg config.GoogleConfig) *Verifier {
	return &Verifier{
		keyfunc:   kf,
		clientIDs: cfg.ClientIDs,
		oauth: &oauth2.Config{
			ClientID:     firstOrEmpty(cfg.ClientIDs),
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     oauthgoogle.Endpoint,
		},
		now:   time.Now,
		close: func() {},
	}
}

// Close останавливает фоновое обновление JWKS.
func (v *Verifier) Close() { v.close() }

// Verify проверяет подпись RS256, издателя, аудиторию и email_verified.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	const op = "google.Verify"

	var claims Claims
	tok, err := jwt.ParseWithClaims(idToken, &claims, v.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrUnverified.WithCause(errString(err)))
	}

	if !slices.Contains(issuers, claims.Issuer) {
		return nil, fmt.Errorf("%s: %w", op, ErrUnverified.WithCause("unexpected issuer"))
	}

	if !audienceAllowed(claims.Audience, v.clientIDs) {
		return nil, fmt.Errorf("%s: %w", op, ErrUnverified.WithCause("unexpected audience"))
	}

	if claims.Email == "" || !claims.EmailVerified {
		return nil, fmt.Errorf("%s: %w", op, ErrUnverified)
	}

	return &Identity{
		Subject:    claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		Picture:    claims.Picture,
	}, nil
}

// Exchange меняет authorization code на ID-токен.
func (v *Verifier) Exchange(ctx context.Context, code string) (string, error) {
	const op = "google.Exchange"

	tok, err := v.oauth.Exchange(ctx, code)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			return "", fmt.Errorf("%s: %w", op, ErrUnverified.WithCause(re.ErrorCode))
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	raw, _ := tok.Extra("id_token").(string)
	if raw == "" {
		return "", fmt.Errorf("%s: %w", op, ErrMissingIDToken)
	}

	return raw, nil
}

func audienceAllowed(aud jwt.ClaimStrings, allowed []string) bool {
	for _, a := range aud {
		if slices.Contains(allowed, a) {
			return true
		}
	}

	return false
}

func firstOrEmpty(s []string) string {
	if len(s) == 0 {
		return ""
	}

	return s[0]
}

func errString(err error) string {
	if err == nil {
		return "invalid token"
	}

	return err.Error()
}
