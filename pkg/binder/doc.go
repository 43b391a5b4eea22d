// Package binder fills request structs from HTTP requests.
//
// Each binder is a func(*http.Request, any) error that handles one source:
//
//   - JSON() decodes application/json bodies strictly (unknown fields and
//     trailing data are rejected, bodies are capped at DefaultMaxJSONSize).
//   - Form() binds urlencoded and multipart bodies through `form` tags.
//   - Path(extractor) binds router parameters through `path` tags.
//
// JSON and Form return ErrBinderNotApplicable for other content types, so a
// handler can stack them and accept either encoding:
//
//	type CheckRequest struct {
//		Field string `path:"field"`
//		Value string `json:"value" form:"value"`
//	}
//
//	handler.WithBinders[handler.Context, CheckRequest](
//		binder.Path(chi.URLParam),
//		binder.JSON(),
//		binder.Form(),
//	)
//
// The lower level ReadBody, DecodeJSON, FormValues and Flatten helpers are
// exported for handlers that need the raw body, for example to check it
// against a JSON Schema before decoding.
//
// # Error Handling
//
// Errors wrap one of ErrUnsupportedMediaType, ErrMissingContentType,
// ErrFailedToParseJSON, ErrFailedToParseForm, ErrInvalidPath or
// ErrBodyTooLarge and can be matched with errors.Is.
package binder
