package clientip_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/logger"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remote     string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{name: "peer address", remote: "192.0.2.10:5123", want: "192.0.2.10"},
		{name: "peer without port", remote: "192.0.2.10", want: "192.0.2.10"},
		{name: "ipv6 peer", remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "mapped ipv4", remote: "[::ffff:192.0.2.7]:80", want: "192.0.2.7"},
		{name: "garbage peer", remote: "not-an-ip", want: ""},
		{
			name:    "headers ignored without trust",
			remote:  "192.0.2.10:5123",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.5"},
			want:    "192.0.2.10",
		},
		{
			name:       "first valid forwarded address",
			remote:     "10.0.0.2:5123",
			headers:    map[string]string{"X-Forwarded-For": "junk, 203.0.113.5, 10.0.0.1"},
			trustProxy: true,
			want:       "203.0.113.5",
		},
		{
			name:       "real ip header",
			remote:     "10.0.0.2:5123",
			headers:    map[string]string{"X-Real-IP": " 203.0.113.9 "},
			trustProxy: true,
			want:       "203.0.113.9",
		},
		{
			name:       "falls back to peer",
			remote:     "10.0.0.2:5123",
			headers:    map[string]string{"X-Forwarded-For": "unknown"},
			trustProxy: true,
			want:       "10.0.0.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(r, tt.trustProxy))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(true)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.5")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "203.0.113.5", got)
	assert.Empty(t, clientip.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelInfo),
		logger.WithContextExtractors(clientip.LoggerExtractor()),
	)

	log.InfoContext(clientip.WithContext(context.Background(), "192.0.2.1"), "checked")
	assert.Contains(t, buf.String(), `"client_ip":"192.0.2.1"`)

	buf.Reset()
	log.InfoContext(context.Background(), "checked")
	assert.NotContains(t, buf.String(), "client_ip")
}
