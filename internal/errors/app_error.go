package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeDuplicateEntry  = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
)

var statusByCode = map[string]int{
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeDuplicateEntry:  http.StatusConflict,
	ErrCodeTooManyRequests: http.StatusTooManyRequests,
}

// AppError is the error type every layer returns to the HTTP boundary. Code
// is stable for clients, Message is safe to show, Err is the internal cause.
type AppError struct {
	Code       string
	Message    string
	Details    []string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError whose status is derived from code. Unknown codes
// map to 500.
func New(code, message string) *AppError {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	return &AppError{Code: code, Message: message, StatusCode: status}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Details = append(e.Details, detail)

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

func ValidationError(message string) *AppError {
	return New(ErrCodeValidation, message)
}

func BadRequestError(message string) *AppError {
	return New(ErrCodeBadRequest, message)
}

func NotFoundError(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

func UnauthorizedError(message string) *AppError {
	return New(ErrCodeUnauthorized, message)
}

func InternalError(message string) *AppError {
	return New(ErrCodeInternal, message)
}

func DatabaseError(message string) *AppError {
	return New(ErrCodeDatabaseError, message)
}

func DuplicateEntryError(message string) *AppError {
	return New(ErrCodeDuplicateEntry, message)
}

func ThirdPartyError(message string) *AppError {
	return New(ErrCodeThirdPartyError, message)
}

func TooManyRequestsError(message string) *AppError {
	return New(ErrCodeTooManyRequests, message)
}

// AddValidationError reports a single bad field.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == code
}

// Wrap keeps an AppError raised further down untouched and otherwise
// attaches err to fallback.
func Wrap(err error, fallback *AppError) error {
	if err == nil {
		return nil
	}

	if appErr, ok := IsAppError(err); ok {
		return appErr
	}

	return fallback.WithError(err)
}
