package handler

import (
	"net/http"
)

// SSEHandler streams DataStar patches through a StreamContext.
// The stream ends when the handler returns.
type SSEHandler func(ctx StreamContext) error

// sseResponse implements Response for Server-Sent Events.
type sseResponse struct {
	handler SSEHandler
}

// Render checks for a DataStar request and runs the handler.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a response that runs handler over a DataStar SSE stream.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendComponent(errorBlock, handler.WithTarget("#patient-login-errors")); err != nil {
//			return err
//		}
//		return stream.SendSignal("formValid", false)
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
