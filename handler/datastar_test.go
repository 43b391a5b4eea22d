package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/binder"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		header map[string]string
		want   bool
	}{
		{name: "plain request", target: "/"},
		{name: "datastar header", target: "/", header: map[string]string{"Datastar-Request": "true"}, want: true},
		{name: "event stream accept", target: "/", header: map[string]string{"Accept": "text/event-stream"}, want: true},
		{name: "signals query", target: "/?datastar=%7B%7D", want: true},
		{name: "json accept", target: "/", header: map[string]string{"Accept": "application/json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(req))
		})
	}
}

func TestBody(t *testing.T) {
	t.Parallel()

	bind := handler.Body(binder.JSON(), binder.Form())

	t.Run("datastar signals ignore unknown keys", func(t *testing.T) {
		var got checkRequest
		req := datastarRequest(http.MethodPost, "/", `{"value":"Anna","emailState":"valid"}`)
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "Anna", got.Value)
	})

	t.Run("plain json is strict", func(t *testing.T) {
		var got checkRequest
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":"Anna","extra":1}`))
		req.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, bind(req, &got), binder.ErrFailedToParseJSON)
	})

	t.Run("form falls through json", func(t *testing.T) {
		var got checkRequest
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("value=Anna"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "Anna", got.Value)
	})

	t.Run("unsupported type is rejected", func(t *testing.T) {
		var got checkRequest
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Anna"))
		req.Header.Set("Content-Type", "text/plain")
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
		assert.NotErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("missing content type is rejected", func(t *testing.T) {
		var got checkRequest
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Anna"))
		assert.ErrorIs(t, bind(req, &got), binder.ErrMissingContentType)
	})
}

func TestContext_SSE(t *testing.T) {
	t.Parallel()

	t.Run("nil for regular requests", func(t *testing.T) {
		ctx := handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Nil(t, ctx.SSE())
	})

	t.Run("lazy for datastar requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := handler.NewContext(rec, datastarRequest(http.MethodGet, "/", ""))
		assert.Empty(t, rec.Header().Get("Content-Type"), "headers untouched until SSE is used")

		sse := ctx.SSE()
		require.NotNil(t, sse)
		assert.Same(t, sse, ctx.SSE())
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	})

	t.Run("delegates to request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := handler.NewContext(httptest.NewRecorder(), req)
		assert.Same(t, req, ctx.Request())
		assert.NoError(t, ctx.Err())
	})
}
