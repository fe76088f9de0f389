package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrProviderUnavailable covers network failures, non-2xx answers and
// malformed bodies from an external rate provider.
var ErrProviderUnavailable = errors.New("rate provider unavailable")

// ErrNoResults is the uniform failure of a pair-bound rate lookup.
var ErrNoResults = errors.New("No results")

// ErrUnknownProvider indicates that no rate provider is registered under a name.
var ErrUnknownProvider = errors.New("unknown rate provider")

// ErrStaleQuote indicates that a client-submitted rate no longer matches the current bid.
var ErrStaleQuote = errors.New("rate has changed")

// ErrResolutionFailure indicates that no fixed, cached or fetched rate could be produced.
var ErrResolutionFailure = errors.New("rate resolution failed")

// AppError is an error carrying the HTTP status it should be reported with.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError builds a 404 AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError builds a 400 AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// StatusCode maps an error to the HTTP status handlers should answer with.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrStaleQuote):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	}
	return http.StatusInternalServerError
}
