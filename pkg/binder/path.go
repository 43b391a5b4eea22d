package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a path parameter binder using the router's extractor.
//
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"`    - skips the field
//
// With chi:
//
//	r.Get("/forms/{kind}/schema", handler.Wrap(schema,
//		handler.WithBinder[handler.Context, SchemaRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidPath)
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}

		values := make(map[string][]string)
		rt := rv.Type()
		for i := range rt.NumField() {
			name, skip := parseFieldTag(rt.Field(i), "path")
			if skip || !rv.Field(i).CanSet() {
				continue
			}
			if value := extractor(r, name); value != "" {
				values[name] = []string{value}
			}
		}
		return bindToStruct(v, "path", values, ErrInvalidPath)
	}
}
