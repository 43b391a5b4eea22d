package formcheck

import (
	"net/http"

	"github.com/dmitrymomot/formguard/handler"
)

var (
	ErrUnknownForm  = handler.NewHTTPError(http.StatusNotFound, "unknown_form")
	ErrUnknownField = handler.NewHTTPError(http.StatusNotFound, "unknown_field")

	ErrTooManyRequests = handler.NewHTTPError(http.StatusTooManyRequests, "too_many_requests")
)
