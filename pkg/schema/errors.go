package schema

import "errors"

var (
	ErrUnknownForm     = errors.New("unknown form kind")
	ErrMalformedJSON   = errors.New("payload is not valid JSON")
	ErrSchemaViolation = errors.New("payload does not match form schema")
	ErrCompileSchema   = errors.New("failed to compile form schema")
)
