package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrInvalidPath          = errors.New("failed to parse path parameters")
	ErrBodyTooLarge         = errors.New("request body too large")

	// ErrBinderNotApplicable is returned when a request carries a content
	// type the binder does not handle. handler.Wrap skips such binders so
	// several body binders can be stacked.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
