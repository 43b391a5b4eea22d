package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was accessed before being set up for the request
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError represents an HTTP error with status code and a stable
// machine-readable key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // e.g. "not_found", "unknown_form"
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// NewHTTPError creates an HTTP error with the given status code and key.
//
//	err := handler.NewHTTPError(http.StatusNotFound, "unknown_form")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// ValidationError maps field names to their messages.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// Error implements the error interface.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	var parts []string
	for field, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFrom groups rule failures by field, keeping their order
// within each field.
func ValidationErrorFrom(errs validator.ValidationErrors) ValidationError {
	ve := NewValidationError()
	for _, e := range errs {
		ve.Add(e.Field, e.Message)
	}
	return ve
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// ClassifyError maps an error to the HTTPError it should be reported as.
// Binding failures become 4xx errors; anything unknown is a 500.
func ClassifyError(err error) HTTPError {
	var httpErr HTTPError
	var valErr ValidationError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &valErr):
		return ErrUnprocessableEntity
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrInvalidPath):
		return ErrBadRequest
	default:
		return ErrInternalServerError
	}
}
