package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

const (
	MediaJSON      = "application/json"
	MediaForm      = "application/x-www-form-urlencoded"
	MediaMultipart = "multipart/form-data"
)

// MediaType returns the lowercased media type of the request without
// parameters, or "" when the header is missing.
func MediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		if idx := strings.Index(ct, ";"); idx != -1 {
			ct = ct[:idx]
		}
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

func notApplicable(got, want string) error {
	if got == "" {
		return fmt.Errorf("%w: %w, expected %s", ErrBinderNotApplicable, ErrMissingContentType, want)
	}
	return fmt.Errorf("%w: %w: got %s, expected %s", ErrBinderNotApplicable, ErrUnsupportedMediaType, got, want)
}
