package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/outbox"
	"github.com/pribylovaa/social-network/internal/pkg/log"
	"github.com/pribylovaa/social-network/internal/pkg/redact"
	"github.com/pribylovaa/social-network/internal/storage"
)

// SignupInput — данные регистрации. Формат полей проверяется транспортом.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Gender    models.Gender
}

// Signup создаёт неподтверждённый системный аккаунт и ставит письмо с OTP в очередь.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*models.Account, error) {
	const op = "service.auth.Signup"

	_, err := s.storage.AccountByEmail(ctx, in.Email)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailExists)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	otp, otpHash, err := s.newOTP()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	acc := models.NewAccount(models.NewAccountParams{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Gender:       in.Gender,
		Provider:     models.ProviderSystem,
		PasswordHash: passwordHash,
	}, s.now())
	acc.ConfirmEmailOTP = otpHash

	if err := s.storage.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.enqueueEmail(ctx, outbox.KindConfirmEmail, acc, otp)

	return acc, nil
}

// ResendConfirmEmail выдаёт новый OTP неподтверждённому системному аккаунту.
func (s *Service) ResendConfirmEmail(ctx context.Context, email string) error {
	const op = "service.auth.ResendConfirmEmail"

	acc, err := s.storage.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidEmailOrConfirmed)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if acc.Federated() || acc.Confirmed() {
		return fmt.Errorf("%s: %w", op, ErrInvalidEmailOrConfirmed)
	}

	otp, otpHash, err := s.newOTP()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.SetConfirmOTP(ctx, acc.ID, otpHash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidEmailOrConfirmed)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	s.enqueueEmail(ctx, outbox.KindConfirmEmail, acc, otp)

	return nil
}

// ConfirmEmail сверяет OTP и одним обновлением подтверждает email.
func (s *Service) ConfirmEmail(ctx context.Context, email, otp string) error {
	const op = "service.auth.ConfirmEmail"

	acc, err := s.storage.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidEmailOrConfirmed)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if acc.Confirmed() || acc.ConfirmEmailOTP == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidEmailOrConfirmed)
	}

	if !s.hasher.Verify(otp, acc.ConfirmEmailOTP) {
		return fmt.Errorf("%s: %w", op, ErrInvalidOTP)
	}

	if err := s.storage.ConfirmEmail(ctx, acc.ID, s.now()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidEmailOrConfirmed)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Login выполняет вход системного аккаунта по email+пароль.
func (s *Service) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	const op = "service.auth.Login"

	acc, err := s.storage.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.TokenPair{}, fmt.Errorf("%s: %w", op, ErrUnknownCredentials)
		}

		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	if acc.Federated() || acc.Frozen() {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, ErrUnknownCredentials)
	}

	if !acc.Confirmed() {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, ErrEmailNotConfirmed)
	}

	if !s.hasher.Verify(password, acc.Password) {
		log.From(ctx).Info("login_rejected",
			slog.String("op", op),
			slog.String("email", redact.Email(acc.Email)),
		)
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.tokens.IssueCredentialPair(acc)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// SendForgotPassword выдаёт OTP сброса пароля подтверждённому системному аккаунту.
func (s *Service) SendForgotPassword(ctx context.Context, email string) error {
	const op = "service.auth.SendForgotPassword"

	acc, err := s.storage.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNoAccountForEmail)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if acc.Federated() || !acc.Confirmed() || acc.Frozen() {
		return fmt.Errorf("%s: %w", op, ErrNoAccountForEmail)
	}

	otp, otpHash, err := s.newOTP()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.SetResetOTP(ctx, acc.ID, otpHash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNoAccountForEmail)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	s.enqueueEmail(ctx, outbox.KindResetPassword, acc, otp)

	return nil
}

// VerifyForgotPassword сверяет OTP сброса, ничего не меняя.
func (s *Service) VerifyForgotPassword(ctx context.Context, email, otp string) error {
	const op = "service.auth.VerifyForgotPassword"

	if _, err := s.resetCandidate(ctx, email, otp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ResetForgotPassword сверяет OTP, меняет пароль и инвалидирует выданные токены.
func (s *Service) ResetForgotPassword(ctx context.Context, email, otp, password string) error {
	const op = "service.auth.ResetForgotPassword"

	acc, err := s.resetCandidate(ctx, email, otp)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.ResetPassword(ctx, acc.ID, passwordHash, s.now()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNoAccountForEmail)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// resetCandidate возвращает системный аккаунт с ожидающим OTP сброса, если код совпал.
func (s *Service) resetCandidate(ctx context.Context, email, otp string) (*models.Account, error) {
	acc, err := s.storage.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoAccountForEmail
		}

		return nil, err
	}

	if acc.Federated() || acc.ResetPasswordOTP == "" {
		return nil, ErrNoAccountForEmail
	}

	if !s.hasher.Verify(otp, acc.ResetPasswordOTP) {
		return nil, ErrInvalidOTP
	}

	return acc, nil
}

// newOTP возвращает код и его хэш.
func (s *Service) newOTP() (string, string, error) {
	otp, err := s.otp()
	if err != nil {
		return "", "", err
	}

	h, err := s.hasher.Hash(otp)
	if err != nil {
		return "", "", err
	}

	return otp, h, nil
}

// enqueueEmail ставит письмо с OTP в очередь. Отказ очереди логируется ею самой.
func (s *Service) enqueueEmail(ctx context.Context, kind outbox.Kind, acc *models.Account, otp string) {
	s.tasks.Enqueue(ctx, outbox.Task{
		Kind: kind,
		Payload: outbox.EmailPayload{
			To:   acc.Email,
			Name: acc.Username(),
			OTP:  otp,
		},
	})
}
