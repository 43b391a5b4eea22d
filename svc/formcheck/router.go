package formcheck

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/environment"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/metrics"
	"github.com/dmitrymomot/formguard/pkg/requestid"
)

// Mountable is anything that serves a sub-tree of routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the application router. Only Service is
// required.
type RouterOptions struct {
	Service Mountable

	// Environment is attached to every request context when set.
	Environment environment.Environment

	// HTTPMetrics observes request durations; Metrics serves /metrics.
	HTTPMetrics *metrics.HTTPMetrics
	Metrics     http.Handler

	// TrustProxy makes client addresses come from X-Forwarded-For and
	// X-Real-IP.
	TrustProxy bool

	// Readiness checks back /readyz. With none it answers READY.
	Readiness []func(context.Context) error

	// Logger is used by the health probes.
	Logger *slog.Logger
}

// Router creates the application router.
//
//	collector := metrics.NewCollector().WithRuntime()
//	svc := formcheck.New(formcheck.WithMetrics(metrics.NewValidationMetrics(collector)))
//
//	r := formcheck.Router(formcheck.RouterOptions{
//		Service:     svc,
//		HTTPMetrics: metrics.NewHTTPMetrics(collector),
//		Metrics:     collector.Handler(),
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(opts.TrustProxy))
	if opts.Environment != "" {
		r.Use(environment.Middleware(opts.Environment))
	}
	if opts.HTTPMetrics != nil {
		r.Use(opts.HTTPMetrics.Middleware)
	}

	r.Get("/healthz", httpserver.HealthCheckHandler(opts.Logger))
	r.Get("/readyz", readinessHandler(opts.Logger, opts.Readiness))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	if opts.Service != nil {
		r.Mount("/", opts.Service.Handle())
	}

	return r
}

func readinessHandler(log *slog.Logger, checks []func(context.Context) error) http.HandlerFunc {
	if len(checks) == 0 {
		checks = []func(context.Context) error{func(context.Context) error { return nil }}
	}
	return httpserver.HealthCheckHandler(log, checks...)
}
