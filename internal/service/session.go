package service

import (
	"context"
	"fmt"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/security"
)

// LogoutFlag — область выхода.
type LogoutFlag string

const (
	// LogoutOnly отзывает только текущую пару (по jti).
	LogoutOnly LogoutFlag = "only"
	// LogoutAll инвалидирует все пары, выпущенные до текущего момента.
	LogoutAll LogoutFlag = "all"
)

// ErrInvalidLogoutFlag — неизвестная область выхода. HTTP 400.
var ErrInvalidLogoutFlag = apierrors.BadRequest("invalid logout flag")

// Refresh выпускает новую пару и отзывает jti предъявленного refresh-токена.
func (s *Service) Refresh(ctx context.Context, acc *models.Account, claims *security.Claims) (models.TokenPair, error) {
	const op = "service.session.Refresh"

	pair, err := s.tokens.IssueCredentialPair(acc)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.revoke(ctx, acc, claims); err != nil {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// Logout завершает сессию. Пустой флаг — LogoutOnly.
func (s *Service) Logout(ctx context.Context, acc *models.Account, claims *security.Claims, flag LogoutFlag) error {
	const op = "service.session.Logout"

	switch flag {
	case LogoutAll:
		if err := s.storage.TouchCredentials(ctx, acc.ID, s.now()); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	case LogoutOnly, "":
		if err := s.revoke(ctx, acc, claims); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	default:
		return fmt.Errorf("%s: %w", op, ErrInvalidLogoutFlag)
	}

	return nil
}

func (s *Service) revoke(ctx context.Context, acc *models.Account, claims *security.Claims) error {
	return s.ledger.Record(ctx, models.RevokedToken{
		JTI:       claims.ID,
		AccountID: acc.ID,
		ExpiresAt: s.tokens.RevocationExpiry(claims),
		CreatedAt: s.now().UTC(),
	})
}
