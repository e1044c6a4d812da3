// handlers содержит REST-обработчики: разбор и валидацию запроса,
// вызов сервиса и запись ответа в конверте {message, statusCode, data}.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/http/middleware"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/pkg/log"
	"github.com/pribylovaa/social-network/internal/service"
)

var (
	errInvalidBody = apierrors.BadRequest("invalid request body")
	errValidation  = apierrors.BadRequest("validation error")
)

// Options — параметры обработчиков.
type Options struct {
	// Errors пишет ошибки; Debug добавляет стек (local/dev).
	Errors         apierrors.Writer
	MaxUploadBytes int64
}

// Handlers — REST-обработчики поверх сервиса.
type Handlers struct {
	svc       *service.Service
	errs      apierrors.Writer
	maxUpload int64
}

func New(svc *service.Service, opts Options) *Handlers {
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}

	return &Handlers{svc: svc, errs: opts.Errors, maxUpload: maxUpload}
}

// fail пишет ошибку; внутренние дополнительно логируются.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if status, _ := apierrors.ToHTTP(err); status >= http.StatusInternalServerError {
		log.From(r.Context()).Error("request_failed", slog.String("err", err.Error()))
	}

	h.errs.WriteError(w, r, err)
}

// decodeStrict — строгий JSON-декодер: неизвестные поля запрещены.
// Если тип реализует validation.Validatable, тело сразу валидируется.
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errInvalidBody.WithCause(err.Error())
	}

	return validate(v)
}

// decodeOptional — как decodeStrict, но пустое тело допустимо.
func decodeOptional(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody.WithCause(err.Error())
	}

	return validate(v)
}

func validate(v any) error {
	vv, ok := v.(validation.Validatable)
	if !ok {
		return nil
	}

	if err := vv.Validate(); err != nil {
		return validationError(err)
	}

	return nil
}

func validationError(err error) error {
	var ve validation.Errors
	if errors.As(err, &ve) {
		return errValidation.WithCause(ve)
	}

	return errValidation.WithCause(err.Error())
}

// pathID достаёт UUID-параметр пути.
func pathID(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if err := validation.Validate(id, validation.Required, is.UUID); err != nil {
		return "", validationError(validation.Errors{name: err})
	}

	return id, nil
}

// principal — субъект из контекста; маршрут обязан стоять за Authenticate.
func principal(r *http.Request) *middleware.Principal {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		panic("handlers: route is not behind Authenticate")
	}

	return p
}

func actor(r *http.Request) *models.Account { return principal(r).Account }
