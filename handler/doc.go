// Package handler turns typed handler functions into http.HandlerFunc.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap runs the configured binders, decorators and error handler
// around it:
//
//	type CheckRequest struct {
//		Field string `path:"field" json:"-" form:"-"`
//		Value string `json:"value" form:"value"`
//	}
//
//	check := func(ctx handler.Context, req CheckRequest) handler.Response {
//		return handler.JSON(map[string]string{"state": "valid"})
//	}
//
//	r.Post("/fields/{field}/check", handler.Wrap(check,
//		handler.WithBinders[handler.Context, CheckRequest](
//			binder.Path(chi.URLParam),
//			handler.Body(binder.JSON(), binder.Form()),
//		),
//	))
//
// # Responses
//
//   - JSON and JSONError write the {"data","meta","error"} envelope.
//   - Templ renders a component as HTML, or as a DataStar element patch when
//     the request came from the DataStar client.
//   - SSE streams component and signal patches through a StreamContext.
//
// # DataStar
//
// IsDataStar detects DataStar requests. Body reads their signals with
// ReadSignals and falls back to ordinary body binders for other requests.
// Context.SSE creates the event generator lazily so that a handler can still
// answer with a plain error before streaming starts.
//
// # Errors
//
// HTTPError carries a status code and a stable key; ValidationError maps
// fields to messages and renders as 422. ClassifyError maps binder errors to
// 400, 413 and 415. NewErrorHandler logs every error and answers with JSON
// or, for DataStar requests, a toast component.
package handler
