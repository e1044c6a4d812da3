package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/social-network/internal/google"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/storage"
)

// GoogleResult — итог входа через Google. Created — аккаунт создан этим вызовом.
type GoogleResult struct {
	Pair    models.TokenPair
	Created bool
}

// GoogleLogin выполняет вход по ID-токену в существующий GOOGLE-аккаунт.
func (s *Service) GoogleLogin(ctx context.Context, idToken string) (models.TokenPair, error) {
	const op = "service.google.GoogleLogin"

	id, err := s.verifyGoogle(ctx, idToken)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	acc, err := s.storage.AccountByEmail(ctx, id.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.TokenPair{}, fmt.Errorf("%s: %w", op, ErrNoGoogleAccount)
		}

		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	if acc.Provider != models.ProviderGoogle || acc.Frozen() {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, ErrNoGoogleAccount)
	}

	pair, err := s.tokens.IssueCredentialPair(acc)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// GoogleSignup регистрирует GOOGLE-аккаунт или выполняет вход в существующий.
// Email, занятый аккаунтом другого провайдера, — конфликт.
func (s *Service) GoogleSignup(ctx context.Context, idToken string) (GoogleResult, error) {
	const op = "service.google.GoogleSignup"

	id, err := s.verifyGoogle(ctx, idToken)
	if err != nil {
		return GoogleResult{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.googleSignupOrLogin(ctx, id)
	if err != nil {
		return GoogleResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

// GoogleExchange меняет authorization code на ID-токен и выполняет регистрацию или вход.
func (s *Service) GoogleExchange(ctx context.Context, code string) (GoogleResult, error) {
	const op = "service.google.GoogleExchange"

	if s.google == nil {
		return GoogleResult{}, fmt.Errorf("%s: %w", op, ErrGoogleDisabled)
	}

	idToken, err := s.google.Exchange(ctx, code)
	if err != nil {
		return GoogleResult{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.verifyGoogle(ctx, idToken)
	if err != nil {
		return GoogleResult{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.googleSignupOrLogin(ctx, id)
	if err != nil {
		return GoogleResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

func (s *Service) googleSignupOrLogin(ctx context.Context, id *google.Identity) (GoogleResult, error) {
	acc, err := s.storage.AccountByEmail(ctx, id.Email)
	switch {
	case err == nil:
		if acc.Provider != models.ProviderGoogle {
			return GoogleResult{}, ErrEmailOtherProvider
		}

		if acc.Frozen() {
			return GoogleResult{}, ErrNoGoogleAccount
		}

		pair, err := s.tokens.IssueCredentialPair(acc)
		if err != nil {
			return GoogleResult{}, err
		}

		return GoogleResult{Pair: pair}, nil
	case !errors.Is(err, storage.ErrNotFound):
		return GoogleResult{}, err
	}

	acc = models.NewAccount(models.NewAccountParams{
		FirstName:    id.GivenName,
		LastName:     id.FamilyName,
		Email:        id.Email,
		Provider:     models.ProviderGoogle,
		ProfileImage: id.Picture,
	}, s.now())

	if err := s.storage.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return GoogleResult{}, ErrEmailExists
		}

		return GoogleResult{}, err
	}

	pair, err := s.tokens.IssueCredentialPair(acc)
	if err != nil {
		return GoogleResult{}, err
	}

	return GoogleResult{Pair: pair, Created: true}, nil
}

func (s *Service) verifyGoogle(ctx context.Context, idToken string) (*google.Identity, error) {
	if s.google == nil {
		return nil, ErrGoogleDisabled
	}

	return s.google.Verify(ctx, idToken)
}
