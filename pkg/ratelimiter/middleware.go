package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/logger"
)

// KeyFunc picks the bucket a request draws from. An empty key bypasses the
// limit.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the address clientip.Middleware stored, or
// by the peer address when the middleware did not run.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r, false)
}

// DeniedFunc writes the response for a throttled request.
type DeniedFunc func(w http.ResponseWriter, r *http.Request, res Result)

type middlewareConfig struct {
	key    KeyFunc
	denied DeniedFunc
	log    *slog.Logger
	now    func() time.Time
}

type MiddlewareOption func(*middlewareConfig)

func WithKeyFunc(fn KeyFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.key = fn
		}
	}
}

// WithDenied replaces the plain-text 429 response.
func WithDenied(fn DeniedFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.denied = fn
		}
	}
}

func WithLogger(log *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if log != nil {
			c.log = log
		}
	}
}

func WithMiddlewareClock(now func() time.Time) MiddlewareOption {
	return func(c *middlewareConfig) {
		if now != nil {
			c.now = now
		}
	}
}

func deniedText(w http.ResponseWriter, _ *http.Request, _ Result) {
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

// Middleware throttles requests with b. Every response carries the
// X-RateLimit-* headers; throttled ones also carry Retry-After in seconds.
// A failing store lets the request through.
func Middleware(b *Bucket, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		key:    ByClientIP,
		denied: deniedText,
		log:    slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := cfg.key(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), key)
			if err != nil {
				cfg.log.ErrorContext(r.Context(), "rate limit check failed",
					logger.Component("ratelimiter"),
					logger.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				retry := int(res.RetryAfter(cfg.now()).Round(time.Second) / time.Second)
				h.Set("Retry-After", strconv.Itoa(max(1, retry)))
				cfg.log.DebugContext(r.Context(), "request throttled",
					logger.Component("ratelimiter"),
					logger.Event("throttled"),
				)
				cfg.denied(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
