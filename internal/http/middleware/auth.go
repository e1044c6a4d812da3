package middleware

import (
	"context"
	"net/http"
	"slices"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/pkg/log"
	"github.com/pribylovaa/social-network/internal/security"
)

var (
	// ErrMissingAuthHeader — запрос без Authorization. HTTP 401.
	ErrMissingAuthHeader = apierrors.Unauthorized("missing authorization header")

	// ErrRoleNotAllowed — роль аккаунта не входит в список разрешённых. HTTP 403.
	ErrRoleNotAllowed = apierrors.Forbidden("not authorized account")
)

// Decoder проверяет заголовок Authorization (реализация: security.Tokens).
type Decoder interface {
	Decode(ctx context.Context, header string, kind models.TokenKind) (*security.Decoded, error)
}

// Principal — аутентифицированный субъект запроса.
type Principal struct {
	Account *models.Account
	Claims  *security.Claims
	Level   models.SignatureLevel
}

type principalKey struct{}

// WithPrincipal кладёт субъекта в контекст.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom достаёт субъекта из контекста.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// Authenticate требует валидный токен вида kind. Субъект попадает в контекст,
// user_id — в логгер запроса. Ошибки пишет errs.
func Authenticate(dec Decoder, kind models.TokenKind, errs apierrors.Writer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				errs.WriteError(w, r, ErrMissingAuthHeader)
				return
			}

			d, err := dec.Decode(r.Context(), header, kind)
			if err != nil {
				errs.WriteError(w, r, err)
				return
			}

			ctx := WithPrincipal(r.Context(), &Principal{Account: d.Account, Claims: d.Claims, Level: d.Level})
			ctx = log.With(ctx, "user_id", d.Account.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize пропускает только аккаунты с одной из ролей. Ставится после Authenticate.
func Authorize(errs apierrors.Writer, roles ...models.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				errs.WriteError(w, r, ErrMissingAuthHeader)
				return
			}

			if !slices.Contains(roles, p.Account.Role) {
				errs.WriteError(w, r, ErrRoleNotAllowed)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
