package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formguard/pkg/binder"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
//	check := handler.HandlerFunc[handler.Context, CheckRequest](
//		func(ctx handler.Context, req CheckRequest) handler.Response {
//			return handler.JSON(checkField(req.Field, req.Value))
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders      []Bind
	errorHandler ErrorHandler[C]
}

// WithBinder replaces the binders with b.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders that are applied in order. A binder that
// returns binder.ErrBinderNotApplicable is skipped.
//
//	handler.WithBinders[handler.Context, CheckRequest](
//		binder.Path(chi.URLParam),
//		handler.Body(binder.JSON(), binder.Form()),
//	)
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// defaultErrorHandler writes the classified status code and key as plain text.
func defaultErrorHandler[C Context](ctx C, err error) {
	httpErr := ClassifyError(err)
	http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//	r.Post("/fields/{field}/check", handler.Wrap(check,
//		handler.WithBinders[handler.Context, CheckRequest](
//			binder.Path(chi.URLParam),
//			handler.Body(binder.JSON(), binder.Form()),
//		),
//		handler.WithErrorHandler[handler.Context, CheckRequest](errorHandler),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{errorHandler: defaultErrorHandler[C]}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := any(NewContext(w, r)).(C)
		if !ok {
			panic("handler: Wrap only supports handler.Context")
		}

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := h(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
