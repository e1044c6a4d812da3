package handlers

// Тесты обработчиков.
//
//  Проверяем:
//  - правила DTO: strongPassword, uniqueIDs, contentOrFiles и Validate форм;
//  - Logout: only -> 201 + запись jti, all -> 200 + changeCredentialsAt, неверный флаг -> 400;
//  - Freeze: себя / чужой аккаунт без прав -> 403 / невалидный id / уже заморожен;
//  - ChangeRole: валидация роли, deny-список по роли actor, 404.
//
// Обработчики вызываются напрямую: субъект и параметры пути кладутся в контекст вручную.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/social-network/internal/config"
	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/http/middleware"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/security"
	"github.com/pribylovaa/social-network/internal/service"
	"github.com/pribylovaa/social-network/internal/storage"
	"github.com/pribylovaa/social-network/mocks"
)

const (
	tagA = "5b0c7c4e-6f0e-4d55-9a53-2b8f3c2e1a01"
	tagB = "9d7f1d0a-3c4b-4e8f-8a2b-6c5d4e3f2a10"
)

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"empty_left_to_required", "", false},
		{"ok", "Passw0rd", false},
		{"unicode_ok", "Пароль12a", false},
		{"too_short", "Pa0rd", true},
		{"no_digit", "Password", true},
		{"no_upper", "passw0rd", true},
		{"no_lower", "PASSW0RD", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := strongPassword(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUniqueIDs(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		wantErr string
	}{
		{"nil", nil, ""},
		{"distinct", []string{tagA, tagB}, ""},
		{"not_uuid", []string{tagA, "bob"}, "invalid tag id"},
		{"duplicate", []string{tagA, tagB, tagA}, "duplicated tagged users"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := uniqueIDs(tc.in)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestContentOrFiles(t *testing.T) {
	require.Error(t, contentOrFiles(0)(""))
	require.Error(t, contentOrFiles(0)("   \n"))
	require.NoError(t, contentOrFiles(1)(""))
	require.NoError(t, contentOrFiles(0)("hi"))
}

// fieldErrors возвращает поля, не прошедшие валидацию.
func fieldErrors(t *testing.T, err error) []string {
	t.Helper()

	if err == nil {
		return nil
	}

	ve, ok := err.(validation.Errors)
	require.True(t, ok, "unexpected error type %T", err)

	fields := make([]string, 0, len(ve))
	for k := range ve {
		fields = append(fields, k)
	}
	return fields
}

func TestPostForm_Validate(t *testing.T) {
	tooMany := make([]string, service.MaxTags+1)
	for i := range tooMany {
		tooMany[i] = tagA
	}

	tests := []struct {
		name string
		in   postForm
		want []string
	}{
		{"text_only", postForm{Content: "hello"}, nil},
		{"files_only", postForm{files: 2}, nil},
		{"empty", postForm{}, []string{"Content"}},
		{"one_char", postForm{Content: "x"}, []string{"Content"}},
		{"bad_availability", postForm{Content: "hello", Availability: "everyone"}, []string{"Availability"}},
		{"bad_allow_comments", postForm{Content: "hello", AllowComments: "maybe"}, []string{"AllowComments"}},
		{"too_many_tags", postForm{Content: "hello", Tags: tooMany}, []string{"Tags"}},
		{"dup_tags", postForm{Content: "hello", Tags: []string{tagB, tagB}}, []string{"Tags"}},
		{"full", postForm{
			Content:       "hello",
			Availability:  models.AvailabilityFriends,
			AllowComments: models.CommentsDeny,
			Tags:          []string{tagA, tagB},
		}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ElementsMatch(t, tc.want, fieldErrors(t, tc.in.Validate()))
		})
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	valid := signupRequest{
		FirstName:       "Ann",
		LastName:        "Lee",
		Email:           "ann@x.com",
		Password:        "Passw0rd!",
		ConfirmPassword: "Passw0rd!",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*signupRequest)
		want   string
	}{
		{"mismatch", func(r *signupRequest) { r.ConfirmPassword = "Passw0rd?" }, "confirmPassword"},
		{"short_name", func(r *signupRequest) { r.FirstName = "A" }, "firstName"},
		{"bad_email", func(r *signupRequest) { r.Email = "ann" }, "email"},
		{"weak_password", func(r *signupRequest) { r.Password, r.ConfirmPassword = "password", "password" }, "password"},
		{"bad_phone", func(r *signupRequest) { r.Phone = "12-34" }, "phone"},
		{"bad_gender", func(r *signupRequest) { r.Gender = "other" }, "gender"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			require.Contains(t, fieldErrors(t, r.Validate()), tc.want)
		})
	}

	withPhone := valid
	withPhone.Phone = "+79991234567"
	withPhone.Gender = models.GenderFemale
	require.NoError(t, withPhone.Validate())
}

func TestSmallRequests_Validate(t *testing.T) {
	require.NoError(t, otpRequest{Email: "a@x.com", OTP: "012345"}.Validate())
	require.Contains(t, fieldErrors(t, otpRequest{Email: "a@x.com", OTP: "12a456"}.Validate()), "otp")

	require.NoError(t, logoutRequest{}.Validate())
	require.NoError(t, logoutRequest{Flag: service.LogoutAll}.Validate())
	require.Contains(t, fieldErrors(t, logoutRequest{Flag: "everyone"}.Validate()), "flag")

	require.Contains(t, fieldErrors(t, changeRoleRequest{}.Validate()), "role")
	require.Contains(t, fieldErrors(t, changeRoleRequest{Role: "god"}.Validate()), "role")
	require.NoError(t, changeRoleRequest{Role: models.RoleAdmin}.Validate())

	require.NoError(t, profileImageRequest{ContentType: "image/png", OriginalName: "me.png"}.Validate())
	require.Contains(t, fieldErrors(t, profileImageRequest{ContentType: "image/webp", OriginalName: "me.webp"}.Validate()), "contentType")
}

type fixture struct {
	st *mocks.MockStorage
	h  *Handlers
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)

	tokens := security.NewTokens(config.AuthConfig{
		AccessUserSecret:    "au",
		RefreshUserSecret:   "ru",
		AccessSystemSecret:  "as",
		RefreshSystemSecret: "rs",
		AccessTokenTTL:      15 * time.Minute,
		RefreshTokenTTL:     time.Hour,
		Issuer:              "social-test",
	}, st, st)

	svc := service.New(service.Deps{
		Storage: st,
		Objects: mocks.NewMockObjects(ctrl),
		Tokens:  tokens,
		Tasks:   mocks.NewMockEnqueuer(ctrl),
		Mailer:  mocks.NewMockMailer(ctrl),
	}, config.S3Config{})

	return &fixture{st: st, h: New(svc, Options{})}
}

// serve вызывает handler от имени acc; params — параметры пути chi.
func serve(handler http.HandlerFunc, acc *models.Account, method, body string, params map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithPrincipal(ctx, &middleware.Principal{
		Account: acc,
		Claims:  &security.Claims{},
		Level:   models.LevelForRole(acc.Role),
	})

	rr := httptest.NewRecorder()
	handler(rr, req.WithContext(ctx))
	return rr
}

func errMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp apierrors.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.ErrorMessage
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	acc := &models.Account{ID: tagA, Role: models.RoleUser}

	t.Run("only_by_default", func(t *testing.T) {
		f.st.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rt models.RevokedToken) error {
				require.Equal(t, tagA, rt.AccountID)
				return nil
			})

		rr := serve(f.h.Logout, acc, http.MethodPost, "", nil)
		require.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("all", func(t *testing.T) {
		f.st.EXPECT().TouchCredentials(gomock.Any(), tagA, gomock.Any()).Return(nil)

		rr := serve(f.h.Logout, acc, http.MethodPost, `{"flag":"all"}`, nil)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown_flag", func(t *testing.T) {
		rr := serve(f.h.Logout, acc, http.MethodPost, `{"flag":"everyone"}`, nil)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "validation error", errMessage(t, rr))
	})
}

func TestFreeze(t *testing.T) {
	f := newFixture(t)
	user := &models.Account{ID: tagA, Role: models.RoleUser}
	admin := &models.Account{ID: tagB, Role: models.RoleAdmin}

	t.Run("self", func(t *testing.T) {
		f.st.EXPECT().Freeze(gomock.Any(), tagA, tagA, gomock.Any()).Return(nil)

		rr := serve(f.h.Freeze, user, http.MethodDelete, "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("other_without_rights", func(t *testing.T) {
		rr := serve(f.h.Freeze, user, http.MethodDelete, "", map[string]string{"userId": tagB})
		require.Equal(t, http.StatusForbidden, rr.Code)
		require.Equal(t, "not authorized account", errMessage(t, rr))
	})

	t.Run("invalid_id", func(t *testing.T) {
		rr := serve(f.h.Freeze, admin, http.MethodDelete, "", map[string]string{"userId": "nope"})
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("admin_already_frozen", func(t *testing.T) {
		f.st.EXPECT().Freeze(gomock.Any(), tagA, tagB, gomock.Any()).Return(storage.ErrNotFound)

		rr := serve(f.h.Freeze, admin, http.MethodDelete, "", map[string]string{"userId": tagA})
		require.Equal(t, http.StatusNotFound, rr.Code)
		require.Equal(t, "user not found or already freezed", errMessage(t, rr))
	})
}

func TestChangeRole(t *testing.T) {
	f := newFixture(t)
	admin := &models.Account{ID: tagB, Role: models.RoleAdmin}
	super := &models.Account{ID: tagB, Role: models.RoleSuperAdmin}
	params := map[string]string{"userId": tagA}

	t.Run("invalid_role", func(t *testing.T) {
		rr := serve(f.h.ChangeRole, admin, http.MethodPatch, `{"role":"god"}`, params)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "validation error", errMessage(t, rr))
	})

	t.Run("unknown_field", func(t *testing.T) {
		rr := serve(f.h.ChangeRole, admin, http.MethodPatch, `{"role":"admin","force":true}`, params)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "invalid request body", errMessage(t, rr))
	})

	t.Run("admin_cannot_touch_admins", func(t *testing.T) {
		f.st.EXPECT().ChangeRole(gomock.Any(), tagA, models.RoleUser,
			[]models.Role{models.RoleUser, models.RoleSuperAdmin, models.RoleAdmin}).Return(nil)

		rr := serve(f.h.ChangeRole, admin, http.MethodPatch, `{"role":"user"}`, params)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("super_admin", func(t *testing.T) {
		f.st.EXPECT().ChangeRole(gomock.Any(), tagA, models.RoleAdmin,
			[]models.Role{models.RoleAdmin, models.RoleSuperAdmin}).Return(storage.ErrNotFound)

		rr := serve(f.h.ChangeRole, super, http.MethodPatch, `{"role":"admin"}`, params)
		require.Equal(t, http.StatusNotFound, rr.Code)
		require.Equal(t, "user not found", errMessage(t, rr))
	})
}
