package serverutils

import (
	"net/http"
)

// AppError is an error with a client-safe message and an HTTP status.
type AppError struct {
	Code    int
	Message string
	// Data is attached to the error envelope, e.g. rate-limit counters.
	Data any
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}

func TooManyRequests(message string, data any) *AppError {
	return &AppError{Code: http.StatusTooManyRequests, Message: message, Data: data}
}

func Internal(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message)
}
