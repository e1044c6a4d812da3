package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/social-network/internal/config"
	"github.com/pribylovaa/social-network/internal/google"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/storage"
	"github.com/pribylovaa/social-network/mocks"
)

func testIdentity() *google.Identity {
	return &google.Identity{
		Subject:    "g-123",
		Email:      "ann@gmail.com",
		GivenName:  "Ann",
		FamilyName: "Lee",
		Picture:    "https://lh3.googleusercontent.com/a/pic",
	}
}

func TestGoogle_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(Deps{Storage: mocks.NewMockStorage(ctrl)}, config.S3Config{})

	_, err := s.GoogleLogin(bg(), "idt")
	require.ErrorIs(t, err, ErrGoogleDisabled)

	_, err = s.GoogleSignup(bg(), "idt")
	require.ErrorIs(t, err, ErrGoogleDisabled)

	_, err = s.GoogleExchange(bg(), "code")
	require.ErrorIs(t, err, ErrGoogleDisabled)
}

func TestGoogleSignup_CreatesConfirmedAccount(t *testing.T) {
	s, d := newServiceWithMocks(t)

	var saved *models.Account
	d.google.EXPECT().Verify(gomock.Any(), "idt").Return(testIdentity(), nil)
	d.st.EXPECT().AccountByEmail(gomock.Any(), "ann@gmail.com").Return(nil, storage.ErrNotFound)
	d.st.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *models.Account) error {
		saved = a
		return nil
	})

	res, err := s.GoogleSignup(bg(), "idt")
	require.NoError(t, err)
	require.True(t, res.Created)
	require.NotEmpty(t, res.Pair.AccessToken)

	require.NotNil(t, saved)
	require.Equal(t, models.ProviderGoogle, saved.Provider)
	require.True(t, saved.Confirmed())
	require.Empty(t, saved.Password)
	require.Equal(t, "https://lh3.googleusercontent.com/a/pic", saved.ProfileImage)
}

func TestGoogleSignup_ExistingGoogleAccount_LogsIn(t *testing.T) {
	s, d := newServiceWithMocks(t)

	acc := mustAccount(t, d, "g1", models.RoleUser)
	acc.Provider = models.ProviderGoogle

	d.google.EXPECT().Verify(gomock.Any(), "idt").Return(testIdentity(), nil)
	d.st.EXPECT().AccountByEmail(gomock.Any(), "ann@gmail.com").Return(acc, nil)

	res, err := s.GoogleSignup(bg(), "idt")
	require.NoError(t, err)
	require.False(t, res.Created)
	require.NotEmpty(t, res.Pair.RefreshToken)
}

func TestGoogleSignup_EmailTakenBySystemAccount(t *testing.T) {
	s, d := newServiceWithMocks(t)

	d.google.EXPECT().Verify(gomock.Any(), "idt").Return(testIdentity(), nil)
	d.st.EXPECT().AccountByEmail(gomock.Any(), "ann@gmail.com").Return(mustAccount(t, d, "u1", models.RoleUser), nil)

	_, err := s.GoogleSignup(bg(), "idt")
	require.ErrorIs(t, err, ErrEmailOtherProvider)
}

func TestGoogleLogin(t *testing.T) {
	s, d := newServiceWithMocks(t)

	t.Run("invalid_token", func(t *testing.T) {
		d.google.EXPECT().Verify(gomock.Any(), "bad").Return(nil, google.ErrUnverified)
		_, err := s.GoogleLogin(bg(), "bad")
		require.ErrorIs(t, err, google.ErrUnverified)
	})

	t.Run("no_account", func(t *testing.T) {
		d.google.EXPECT().Verify(gomock.Any(), "idt").Return(testIdentity(), nil)
		d.st.EXPECT().AccountByEmail(gomock.Any(), "ann@gmail.com").Return(nil, storage.ErrNotFound)
		_, err := s.GoogleLogin(bg(), "idt")
		require.ErrorIs(t, err, ErrNoGoogleAccount)
	})

	t.Run("system_account", func(t *testing.T) {
		d.google.EXPECT().Verify(gomock.Any(), "idt").Return(testIdentity(), nil)
		d.st.EXPECT().AccountByEmail(gomock.Any(), "ann@gmail.com").Return(mustAccount(t, d, "u1", models.RoleUser), nil)
		_, err := s.GoogleLogin(bg(), "idt")
		require.ErrorIs(t, err, ErrNoGoogleAccount)
	})

	t.Run("ok", func(t *testing.T) {
		acc := mustAccount(t, d, "g1", models.RoleUser)
		acc.Provider = models.ProviderGoogle
		d.google.EXPECT().Verify(gomock.Any(), "idt").Return(testIdentity(), nil)
		d.st.EXPECT().AccountByEmail(gomock.Any(), "ann@gmail.com").Return(acc, nil)

		pair, err := s.GoogleLogin(bg(), "idt")
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
	})
}

func TestGoogleExchange(t *testing.T) {
	s, d := newServiceWithMocks(t)

	d.google.EXPECT().Exchange(gomock.Any(), "code").Return("", errors.New("oauth2: bad code"))
	_, err := s.GoogleExchange(bg(), "code")
	require.ErrorContains(t, err, "bad code")

	gomock.InOrder(
		d.google.EXPECT().Exchange(gomock.Any(), "code-2").Return("idt", nil),
		d.google.EXPECT().Verify(gomock.Any(), "idt").Return(testIdentity(), nil),
	)
	d.st.EXPECT().AccountByEmail(gomock.Any(), "ann@gmail.com").Return(nil, storage.ErrNotFound)
	d.st.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.GoogleExchange(bg(), "code-2")
	require.NoError(t, err)
	require.True(t, res.Created)
}
