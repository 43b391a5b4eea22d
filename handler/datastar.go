package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formguard/pkg/binder"
)

// DataStar detection constants
const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarRequestHeader is set to "true" by the DataStar client on every fetch
	DataStarRequestHeader = "Datastar-Request"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// Patch mode aliases for convenience
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchRemove  = datastar.ElementPatchModeRemove  // Remove element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
	PatchBefore  = datastar.ElementPatchModeBefore  // Insert before element
	PatchAfter   = datastar.ElementPatchModeAfter   // Insert after element
)

// IsDataStar reports whether r was sent by the DataStar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

// ReadSignals decodes the DataStar signals of r into v. Signals the target
// does not declare are ignored, since the client sends every page signal.
func ReadSignals(r *http.Request, v any) error {
	if err := datastar.ReadSignals(r, v); err != nil {
		return fmt.Errorf("%w: signals: %v", binder.ErrFailedToParseJSON, err)
	}
	return nil
}

// Body returns a binder for request bodies. DataStar requests are read as
// signals; any other request goes to the first of binders that applies.
// When none applies the result is binder.ErrUnsupportedMediaType, so the
// request is rejected instead of silently bound to zero values.
//
//	handler.WithBinders[handler.Context, CheckRequest](
//		binder.Path(chi.URLParam),
//		handler.Body(binder.JSON(), binder.Form()),
//	)
func Body(binders ...Bind) Bind {
	return func(r *http.Request, v any) error {
		if IsDataStar(r) {
			return ReadSignals(r, v)
		}
		for _, bind := range binders {
			err := bind(r, v)
			if errors.Is(err, binder.ErrBinderNotApplicable) {
				continue
			}
			return err
		}
		if mt := binder.MediaType(r); mt != "" {
			return fmt.Errorf("%w: %s", binder.ErrUnsupportedMediaType, mt)
		}
		return binder.ErrMissingContentType
	}
}
