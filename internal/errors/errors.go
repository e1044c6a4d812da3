// errors стандартизирует ошибки сервиса и их HTTP-представление.
//
// Доменные ошибки описываются типом *Error с видом (Kind), коротким
// сообщением для клиента и необязательной структурированной причиной.
// Слои выше оборачивают их через fmt.Errorf("%s: %w", op, err), а
// Writer.WriteError разворачивает цепочку и пишет конверт:
//
//	{"error_message": "...", "cause": ..., "stack": "..."}
//
// Всё, что не является *Error, отдаётся как 500 без утечки деталей.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// Kind — класс ошибки, определяющий HTTP-статус.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindTooManyRequests
)

// Error — доменная ошибка с видом и безопасным сообщением.
type Error struct {
	Kind    Kind
	Message string
	Cause   any
}

func (e *Error) Error() string { return e.Message }

// WithCause возвращает копию ошибки с причиной (например, ошибки валидации полей).
// Копия сохраняет совместимость с errors.Is по исходному значению.
func (e *Error) WithCause(cause any) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Cause: cause}
}

// Is сравнивает ошибки по виду и сообщению, чтобы копии из WithCause
// оставались равны исходным сентинелам.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind && e.Message == t.Message
}

func BadRequest(msg string) *Error      { return &Error{Kind: KindBadRequest, Message: msg} }
func Unauthorized(msg string) *Error    { return &Error{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) *Error       { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error        { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error        { return &Error{Kind: KindConflict, Message: msg} }
func TooManyRequests(msg string) *Error { return &Error{Kind: KindTooManyRequests, Message: msg} }

// Response — конверт ошибки.
type Response struct {
	ErrorMessage string `json:"error_message"`
	Cause        any    `json:"cause,omitempty"`
	Stack        string `json:"stack,omitempty"`
	RequestID    string `json:"request_id,omitempty"`
}

// Success — конверт успешного ответа.
type Success struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и конверт ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500, чтобы не отдать "200 OK" с телом ошибки;
//   - в цепочке есть *Error — статус по Kind, сообщение из Error.Message;
//   - context.Canceled/DeadlineExceeded — 499/504;
//   - прочее — 500 "something went wrong".
func ToHTTP(err error) (int, Response) {
	if err == nil {
		return http.StatusInternalServerError, Response{ErrorMessage: "something went wrong"}
	}

	var e *Error
	if stderrors.As(err, &e) {
		return statusFromKind(e.Kind), Response{ErrorMessage: e.Message, Cause: e.Cause}
	}

	switch {
	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, Response{ErrorMessage: "canceled"}
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, Response{ErrorMessage: "deadline exceeded"}
	}

	return http.StatusInternalServerError, Response{ErrorMessage: "something went wrong"}
}

// Writer пишет ошибки в ответ. При Debug в конверт добавляется стек.
type Writer struct {
	Debug bool
}

// WriteError пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func (wr Writer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	if wr.Debug && err != nil {
		resp.Stack = fmt.Sprintf("%v\n%s", err, debug.Stack())
	}

	writeJSON(w, status, resp)
}

// WriteSuccess пишет конверт {message, statusCode, data}.
func WriteSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Success{Message: "Done", StatusCode: status, Data: data})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFromKind(k Kind) int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
