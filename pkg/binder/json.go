package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates a JSON binder function. Requests that are not
// application/json yield ErrBinderNotApplicable so the binder can be stacked
// with Form.
//
// Decoding is strict: unknown fields and trailing data are rejected.
//
//	r.Post("/fields/{field}/check", handler.Wrap(check,
//		handler.WithBinders[handler.Context, CheckRequest](
//			binder.Path(chi.URLParam),
//			binder.JSON(),
//			binder.Form(),
//		),
//	))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mt := MediaType(r); mt != MediaJSON {
			return notApplicable(mt, MediaJSON)
		}

		body, err := ReadBody(r, DefaultMaxJSONSize)
		if err != nil {
			return err
		}
		return DecodeJSON(body, v)
	}
}

// ReadBody reads at most limit bytes of the request body.
// A body that exceeds limit returns ErrBodyTooLarge.
func ReadBody(r *http.Request, limit int64) ([]byte, error) {
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	return body, nil
}

// DecodeJSON strictly decodes a single JSON value from body into v.
func DecodeJSON(body []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}
	return nil
}
