package service

// Тесты сервисного слоя.
//
//  Проверяем:
//  - маппинг ошибок storage -> доменные ошибки (NotFound / Conflict / BadRequest / Forbidden);
//  - сценарии регистрации, подтверждения и входа;
//  - выпуск и отзыв сессий (refresh, logout only|all);
//  - права на заморозку, восстановление и смену роли;
//  - очистку загруженных объектов при сбоях хранилища.
//
// Подготовка окружения:
//   go test ./internal/service -v -race -count=1
//
// Примечание: моки сгенерированы в пакете /mocks (MockStorage, MockObjects, MockEnqueuer, ...).
// Хэширование и токены — настоящие (bcrypt с минимальной стоимостью).

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/social-network/internal/config"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/security"
	"github.com/pribylovaa/social-network/mocks"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

const testGrace = time.Minute

type testDeps struct {
	st     *mocks.MockStorage
	obj    *mocks.MockObjects
	tasks  *mocks.MockEnqueuer
	google *mocks.MockIdentityVerifier
	mailer *mocks.MockMailer
	hasher *security.Hasher
	tokens *security.Tokens
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessUserSecret:    "au",
		RefreshUserSecret:   "ru",
		AccessSystemSecret:  "as",
		RefreshSystemSecret: "rs",
		AccessTokenTTL:      15 * time.Minute,
		RefreshTokenTTL:     720 * time.Hour,
		Issuer:              "social-test",
	}
}

// newServiceWithMocks — сервис поверх моков; часы зафиксированы на testNow.
func newServiceWithMocks(t *testing.T) (*Service, *testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := &testDeps{
		st:     mocks.NewMockStorage(ctrl),
		obj:    mocks.NewMockObjects(ctrl),
		tasks:  mocks.NewMockEnqueuer(ctrl),
		google: mocks.NewMockIdentityVerifier(ctrl),
		mailer: mocks.NewMockMailer(ctrl),
		hasher: security.NewHasher(bcrypt.MinCost),
	}
	d.tokens = security.NewTokens(testAuthConfig(), d.st, d.st, security.WithClock(func() time.Time { return testNow }))

	s := New(Deps{
		Storage: d.st,
		Objects: d.obj,
		Hasher:  d.hasher,
		Tokens:  d.tokens,
		Tasks:   d.tasks,
		Mailer:  d.mailer,
		Google:  d.google,
	}, config.S3Config{ProfileImageGrace: testGrace})
	s.now = func() time.Time { return testNow }

	return s, d
}

// mustAccount — подтверждённый системный аккаунт с паролем "Passw0rd!".
func mustAccount(t *testing.T, d *testDeps, id string, role models.Role) *models.Account {
	t.Helper()

	hash, err := d.hasher.Hash("Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}

	confirmed := testNow.Add(-time.Hour)
	return &models.Account{
		ID:          id,
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       id + "@x.com",
		Password:    hash,
		ConfirmedAt: &confirmed,
		Role:        role,
		Provider:    models.ProviderSystem,
	}
}

func bg() context.Context { return context.Background() }
