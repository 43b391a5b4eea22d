package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent represents a templ component interface.
// It has the method set of github.com/a-h/templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the target selector for where the component should be rendered
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component should be merged into the DOM
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// templResponse wraps a templ component to implement Response
type templResponse struct {
	status    int
	component TemplComponent
	options   []datastar.PatchElementOption
}

// Render outputs component via SSE for DataStar or HTML for regular requests
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a templ component.
// DataStar requests receive an element patch that honours the target and
// patch mode options; other requests receive the rendered HTML.
//
//	return handler.Templ(
//		errorBlock,
//		handler.WithTarget("#patient-login-errors"),
//	)
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		options:   opts,
	}
}

// TemplWithStatus is Templ with an explicit HTTP status for HTML responses.
// SSE responses always use 200.
func TemplWithStatus(status int, component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		status:    status,
		component: component,
		options:   opts,
	}
}
