package handler

import (
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with SSE streaming capabilities.
type StreamContext interface {
	Context

	// SendComponent patches a rendered component into the page.
	//
	//	err := stream.SendComponent(
	//		errorBlock,
	//		handler.WithTarget("#add-doctor-errors"),
	//		handler.WithPatchMode(handler.PatchInner),
	//	)
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// SendSignal updates a single frontend signal.
	//
	//	err := stream.SendSignal("emailState", "invalid")
	SendSignal(name string, value any) error

	// SendSignals updates several signals in one event.
	SendSignals(signals map[string]any) error
}

// streamContext implements StreamContext by wrapping a base Context
// with SSE streaming capabilities.
type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendSignal(name string, value any) error {
	return c.SendSignals(map[string]any{name: value})
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}
