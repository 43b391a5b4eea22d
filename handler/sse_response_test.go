package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/handler"
)

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("requires DataStar request", func(t *testing.T) {
		h := handler.SSE(func(handler.StreamContext) error { return nil })

		err := h.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		var httpErr handler.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("streams components and signals", func(t *testing.T) {
		h := handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendComponent(
				mockComponent{content: "<ul><li>Email is required</li></ul>"},
				handler.WithTarget("#patient-login-errors"),
			); err != nil {
				return err
			}
			return stream.SendSignal("formValid", false)
		})

		rec := httptest.NewRecorder()
		require.NoError(t, h.Render(rec, datastarRequest(http.MethodPost, "/", "{}")))

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#patient-login-errors")
		assert.Contains(t, body, "Email is required")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `{"formValid":false}`)
	})

	t.Run("context cancellation stops handler", func(t *testing.T) {
		started := make(chan struct{})
		stopped := make(chan struct{})

		h := handler.SSE(func(stream handler.StreamContext) error {
			close(started)
			<-stream.Done()
			close(stopped)
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		req := datastarRequest(http.MethodGet, "/", "").WithContext(ctx)

		done := make(chan error, 1)
		go func() { done <- h.Render(httptest.NewRecorder(), req) }()

		<-started
		cancel()

		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("handler did not stop on context cancellation")
		}
		assert.NoError(t, <-done)
	})

	t.Run("error propagation", func(t *testing.T) {
		h := handler.SSE(func(handler.StreamContext) error { return assert.AnError })
		err := h.Render(httptest.NewRecorder(), datastarRequest(http.MethodGet, "/", ""))
		assert.Equal(t, assert.AnError, err)
	})
}
