package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. Other content types yield
// ErrBinderNotApplicable.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Fields without a tag bind to the lowercased field name. Supported types
// are strings, integers, floats, bools, slices of those and pointers for
// optional fields.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values, err := FormValues(r)
		if err != nil {
			return err
		}
		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}

// FormValues parses a urlencoded or multipart body and returns its values.
// Uploaded files are ignored.
func FormValues(r *http.Request) (url.Values, error) {
	switch mt := MediaType(r); mt {
	case MediaForm:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return r.PostForm, nil

	case MediaMultipart:
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		if r.MultipartForm == nil {
			return url.Values{}, nil
		}
		return url.Values(r.MultipartForm.Value), nil

	default:
		return nil, notApplicable(mt, MediaForm+" or "+MediaMultipart)
	}
}

// Flatten keeps the first value of every key.
func Flatten(values url.Values) map[string]string {
	flat := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			flat[k] = vs[0]
		}
	}
	return flat
}
