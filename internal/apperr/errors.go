// Package apperr описывает ошибки приложения, которые обработчики переводят в HTTP-ответы.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Type - категория ошибки.
type Type string

const (
	TypeValidation Type = "validation"
	TypeNotFound   Type = "not_found"
	TypeConflict   Type = "conflict"
	TypeCancelled  Type = "cancelled"
	TypeInternal   Type = "internal"
)

// Error - ошибка приложения с категорией и HTTP-статусом.
type Error struct {
	Type       Type
	Message    string
	Cause      error
	HTTPStatus int
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Validation - некорректные входные данные.
func Validation(format string, args ...any) *Error {
	return &Error{Type: TypeValidation, Message: fmt.Sprintf(format, args...), HTTPStatus: http.StatusBadRequest}
}

// NotFound - объект не найден.
func NotFound(resource string) *Error {
	return &Error{Type: TypeNotFound, Message: resource + " not found", HTTPStatus: http.StatusNotFound}
}

// Conflict - действие невозможно в текущем состоянии.
func Conflict(format string, args ...any) *Error {
	return &Error{Type: TypeConflict, Message: fmt.Sprintf(format, args...), HTTPStatus: http.StatusConflict}
}

// Cancelled - отложенная операция отменена до завершения.
func Cancelled(operation string, cause error) *Error {
	return &Error{Type: TypeCancelled, Message: operation + " cancelled", Cause: cause, HTTPStatus: http.StatusServiceUnavailable}
}

// Internal - непредвиденная ошибка, например ошибка базы данных.
func Internal(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause, HTTPStatus: http.StatusInternalServerError}
}

// Is сообщает, относится ли err к категории t.
func Is(err error, t Type) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Type == t
}

// Status возвращает HTTP-статус для ошибки; для неизвестных ошибок - 500.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
