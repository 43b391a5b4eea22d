package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

// mockComponent is a minimal templ component.
type mockComponent struct {
	content string
}

func (m mockComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, m.content)
	return err
}

func datastarRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Datastar-Request", "true")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Content-Type", "application/json")
	return req
}
