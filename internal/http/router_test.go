package http

// Тесты REST-роутера.
//
//  Проверяем сквозь chi + мидлвары + обработчики:
//  - неизвестный маршрут/метод -> 404 "invalid application routing";
//  - валидация тела (400) и строгий JSON (неизвестные поля);
//  - логин -> 200 и конверт {message, statusCode, data.credentials};
//  - 401 без заголовка и с токеном не того вида;
//  - 403 для админских маршрутов с пользовательским токеном;
//  - невалидный UUID в пути -> 400;
//  - multipart-пост: текст, вложение, неверный тип файла;
//  - лимит запросов и BasePath.
//
// Сервис работает поверх моков хранилища; токены и хэшер настоящие.

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/social-network/internal/config"
	"github.com/pribylovaa/social-network/internal/http/middleware"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/security"
	"github.com/pribylovaa/social-network/internal/service"
	"github.com/pribylovaa/social-network/internal/storage"
	"github.com/pribylovaa/social-network/mocks"
)

const (
	userID  = "5b0c7c4e-6f0e-4d55-9a53-2b8f3c2e1a01"
	otherID = "9d7f1d0a-3c4b-4e8f-8a2b-6c5d4e3f2a10"
)

type fixture struct {
	st     *mocks.MockStorage
	obj    *mocks.MockObjects
	tokens *security.Tokens
	hasher *security.Hasher
	h      http.Handler
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		st:     mocks.NewMockStorage(ctrl),
		obj:    mocks.NewMockObjects(ctrl),
		hasher: security.NewHasher(bcrypt.MinCost),
	}
	f.tokens = security.NewTokens(config.AuthConfig{
		AccessUserSecret:    "au",
		RefreshUserSecret:   "ru",
		AccessSystemSecret:  "as",
		RefreshSystemSecret: "rs",
		AccessTokenTTL:      15 * time.Minute,
		RefreshTokenTTL:     time.Hour,
		Issuer:              "social-test",
	}, f.st, f.st)

	svc := service.New(service.Deps{
		Storage: f.st,
		Objects: f.obj,
		Hasher:  f.hasher,
		Tokens:  f.tokens,
		Tasks:   mocks.NewMockEnqueuer(ctrl),
		Mailer:  mocks.NewMockMailer(ctrl),
	}, config.S3Config{})

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second
	}

	f.h = NewRouter(svc, f.tokens, opts)
	return f
}

func (f *fixture) account(t *testing.T, id string, role models.Role) *models.Account {
	t.Helper()

	hash, err := f.hasher.Hash("Passw0rd!")
	require.NoError(t, err)

	confirmed := time.Now().Add(-time.Hour)
	return &models.Account{
		ID:          id,
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@x.com",
		Password:    hash,
		ConfirmedAt: &confirmed,
		Role:        role,
		Provider:    models.ProviderSystem,
	}
}

// authorized выпускает пару для acc и настраивает моки для Decode.
func (f *fixture) authorized(t *testing.T, acc *models.Account) models.TokenPair {
	t.Helper()

	pair, err := f.tokens.IssueCredentialPair(acc)
	require.NoError(t, err)

	f.st.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	f.st.EXPECT().AccountByID(gomock.Any(), acc.ID).Return(acc, nil).AnyTimes()

	return pair
}

func (f *fixture) do(method, target, body, auth string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rr := httptest.NewRecorder()
	f.h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newFixture(t, Options{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodPut, "/auth/login"},
	} {
		rr := f.do(tc.method, tc.path, "", "")
		require.Equal(t, http.StatusNotFound, rr.Code, tc.path)
		require.Equal(t, "invalid application routing", decode(t, rr)["error_message"])
	}
}

func TestRouter_SignupValidation(t *testing.T) {
	f := newFixture(t, Options{})

	t.Run("invalid_fields", func(t *testing.T) {
		rr := f.do(http.MethodPost, "/auth/signup", `{
			"firstName":"Ann","lastName":"Lee","email":"not-an-email",
			"password":"weak","confirmPassword":"weak"
		}`, "")
		require.Equal(t, http.StatusBadRequest, rr.Code)

		body := decode(t, rr)
		require.Equal(t, "validation error", body["error_message"])

		cause, ok := body["cause"].(map[string]any)
		require.True(t, ok)
		require.Contains(t, cause, "email")
		require.Contains(t, cause, "password")
	})

	t.Run("unknown_field", func(t *testing.T) {
		rr := f.do(http.MethodPost, "/auth/signup", `{"firstName":"Ann","admin":true}`, "")
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "invalid request body", decode(t, rr)["error_message"])
	})
}

func TestRouter_Login(t *testing.T) {
	f := newFixture(t, Options{})
	acc := f.account(t, userID, models.RoleUser)

	f.st.EXPECT().AccountByEmail(gomock.Any(), "ann@x.com").Return(acc, nil).Times(2)

	rr := f.do(http.MethodPost, "/auth/login", `{"email":"ann@x.com","password":"Passw0rd!"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode(t, rr)
	require.Equal(t, "Done", body["message"])
	require.EqualValues(t, http.StatusOK, body["statusCode"])

	data := body["data"].(map[string]any)
	creds := data["credentials"].(map[string]any)
	require.NotEmpty(t, creds["access_token"])
	require.NotEmpty(t, creds["refresh_token"])

	rr = f.do(http.MethodPost, "/auth/login", `{"email":"ann@x.com","password":"Wr0ngPass!"}`, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid credentials", decode(t, rr)["error_message"])
}

func TestRouter_Authentication(t *testing.T) {
	f := newFixture(t, Options{})
	acc := f.account(t, userID, models.RoleUser)
	pair := f.authorized(t, acc)

	t.Run("missing_header", func(t *testing.T) {
		rr := f.do(http.MethodGet, "/user", "", "")
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("refresh_token_on_access_route", func(t *testing.T) {
		rr := f.do(http.MethodGet, "/user", "", "Bearer "+pair.RefreshToken)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("profile", func(t *testing.T) {
		f.st.EXPECT().FriendsOf(gomock.Any(), gomock.Any()).Return(nil, nil)

		rr := f.do(http.MethodGet, "/user", "", "Bearer "+pair.AccessToken)
		require.Equal(t, http.StatusOK, rr.Code)
		require.Contains(t, decode(t, rr)["data"], "user")
	})

	t.Run("admin_route_forbidden", func(t *testing.T) {
		rr := f.do(http.MethodPatch, "/user/"+otherID+"/restore", "", "Bearer "+pair.AccessToken)
		require.Equal(t, http.StatusForbidden, rr.Code)
		require.Equal(t, "not authorized account", decode(t, rr)["error_message"])
	})

	t.Run("invalid_path_id", func(t *testing.T) {
		rr := f.do(http.MethodGet, "/user/not-a-uuid", "", "Bearer "+pair.AccessToken)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "validation error", decode(t, rr)["error_message"])
	})
}

// multipartPost собирает форму поста; files — имя файла -> Content-Type.
func multipartPost(t *testing.T, content string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if content != "" {
		require.NoError(t, mw.WriteField("content", content))
	}
	require.NoError(t, mw.WriteField("availability", string(models.AvailabilityFriends)))

	for name, ct := range files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="attachments"; filename="`+name+`"`)
		hdr.Set("Content-Type", ct)

		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG fake"))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestRouter_CreatePost(t *testing.T) {
	f := newFixture(t, Options{})
	acc := f.account(t, userID, models.RoleUser)
	pair := f.authorized(t, acc)

	send := func(body *bytes.Buffer, ct string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/post", body)
		req.Header.Set("Content-Type", ct)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		rr := httptest.NewRecorder()
		f.h.ServeHTTP(rr, req)
		return rr
	}

	t.Run("text_only", func(t *testing.T) {
		var saved *models.Post
		f.st.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, p *models.Post) error { saved = p; return nil })

		rr := send(multipartPost(t, "hello world", nil))
		require.Equal(t, http.StatusCreated, rr.Code)

		data := decode(t, rr)["data"].(map[string]any)
		require.NotNil(t, saved)
		require.Equal(t, saved.ID, data["postId"])
		require.Equal(t, userID, saved.CreatedBy)
		require.Equal(t, models.AvailabilityFriends, saved.Availability)
		require.Empty(t, saved.Attachments)
	})

	t.Run("with_attachment", func(t *testing.T) {
		f.obj.EXPECT().
			UploadMany(gomock.Any(), gomock.Any(), gomock.Len(1)).
			DoAndReturn(func(_ any, path string, files []storage.Upload) ([]string, error) {
				require.True(t, strings.HasPrefix(path, "users/"+userID+"/post/"))
				require.Equal(t, "a.png", files[0].Name)
				require.Equal(t, "image/png", files[0].ContentType)
				return []string{path + "/a.png"}, nil
			})
		f.st.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil)

		rr := send(multipartPost(t, "", map[string]string{"a.png": "image/png"}))
		require.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("invalid_file_type", func(t *testing.T) {
		rr := send(multipartPost(t, "hi there", map[string]string{"a.txt": "text/plain"}))
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "invalid file format", decode(t, rr)["error_message"])
	})

	t.Run("empty_post", func(t *testing.T) {
		rr := send(multipartPost(t, "", nil))
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "validation error", decode(t, rr)["error_message"])
	})
}

func TestRouter_RateLimit(t *testing.T) {
	f := newFixture(t, Options{Limiter: middleware.NewIPLimiter(1, time.Hour)})

	require.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/nope", "", "").Code)

	rr := f.do(http.MethodGet, "/nope", "", "")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.Equal(t, "too many requests from this ip, please try again later", decode(t, rr)["error_message"])
}

func TestRouter_DebugStackOnAuthErrors(t *testing.T) {
	f := newFixture(t, Options{Debug: true})
	acc := f.account(t, userID, models.RoleUser)
	pair := f.authorized(t, acc)

	rr := f.do(http.MethodGet, "/user", "", "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.NotEmpty(t, decode(t, rr)["stack"])

	rr = f.do(http.MethodDelete, "/user/"+otherID, "", "Bearer "+pair.AccessToken)
	require.Equal(t, http.StatusForbidden, rr.Code)
	require.NotEmpty(t, decode(t, rr)["stack"])
}

func TestRouter_BasePath(t *testing.T) {
	f := newFixture(t, Options{BasePath: "/api"})

	require.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/user", "", "").Code)
	require.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/user", "", "").Code)
}
