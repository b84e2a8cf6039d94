package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind - категория ошибки
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBiz
	KindDatabase
)

// Error - ошибка приложения. Biz - ожидаемое нарушение бизнес-правила,
// отдается с HTTP 200 и кодом ошибки в конверте. Остальные виды отдаются с 4xx/5xx.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "Not Found"
	case KindBiz:
		return e.Message
	case KindDatabase:
		return fmt.Sprintf("Database error: %v", e.Err)
	default:
		return fmt.Sprintf("Error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound - маршрут не найден
func NotFound() *Error {
	return &Error{Kind: KindNotFound}
}

// Biz создает ошибку бизнес-правила
func Biz(format string, args ...any) *Error {
	return &Error{Kind: KindBiz, Message: fmt.Sprintf(format, args...)}
}

// Database оборачивает ошибку хранилища
func Database(err error) *Error {
	return &Error{Kind: KindDatabase, Err: err}
}

// Internal оборачивает прочие ошибки
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf возвращает категорию ошибки, нетипизированные ошибки считаются Internal
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsBiz сообщает, является ли ошибка бизнес-ошибкой
func IsBiz(err error) bool {
	return KindOf(err) == KindBiz
}

// StatusCode возвращает HTTP статус для ошибки
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindBiz:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
