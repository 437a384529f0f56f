package errors

import "net/http"

// AppError is an error carrying the HTTP status code it should surface as.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// The messaging core's error taxonomy:
//   - Validation: bad limit, malformed cursor, self-addressed message, empty content
//   - NotFound: unknown partner, cursor outside the requested conversation
//   - Unavailable: transient store failure; never retried by the core
var (
	ErrUnauthorized = NewAppError(http.StatusUnauthorized, "Unauthorized access")
	ErrForbidden    = NewAppError(http.StatusForbidden, "Access denied")
	ErrRateLimit    = NewAppError(http.StatusTooManyRequests, "Rate limit exceeded")
)

// Validation flags a request the caller must fix before retrying.
func Validation(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, msg)
}

// NotFound flags a referenced entity that does not exist in the caller's scope.
func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, msg)
}

// Unavailable flags a transient store failure. Retry policy belongs to the
// client; sends are not idempotent.
func Unavailable(msg string) *AppError {
	return NewAppError(http.StatusServiceUnavailable, msg)
}

func Unauthorized(msg string) *AppError {
	return NewAppError(http.StatusUnauthorized, msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, msg)
}
