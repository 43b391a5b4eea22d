package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/metrics"
	"github.com/dmitrymomot/formguard/pkg/ratelimiter"
	"github.com/dmitrymomot/formguard/pkg/redis"
	"github.com/dmitrymomot/formguard/pkg/schema"
	"github.com/dmitrymomot/formguard/svc/formcheck"
)

func runServe(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env-file", "", "load variables from this .env file first")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			fmt.Fprintf(stderr, "formguard: %v\n", err)
			return exitError
		}
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "formguard: %v\n", err)
		return exitError
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "formguard: %v\n", err)
		return exitError
	}
	logger.SetAsDefault(log)

	var (
		store  ratelimiter.Store
		checks []func(context.Context) error
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.ErrorContext(ctx, "redis unavailable", logger.Component("main"), logger.Error(err))
			return exitError
		}
		defer client.Close()
		store = ratelimiter.NewRedisStore(client)
		checks = append(checks, redis.Healthcheck(client))
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		store = mem
	}

	fieldLimit, err := ratelimiter.NewBucket(store, cfg.FieldCheck)
	if err != nil {
		fmt.Fprintf(stderr, "formguard: %v\n", err)
		return exitError
	}

	svcOpts := []formcheck.Option{
		formcheck.WithLogger(log),
		formcheck.WithSchemas(schema.NewRegistry()),
		formcheck.WithFieldCheckLimit(fieldLimit),
	}
	routerOpts := formcheck.RouterOptions{
		Environment: cfg.environment(),
		TrustProxy:  cfg.TrustProxy,
		Readiness:   checks,
		Logger:      log,
	}
	if cfg.MetricsEnabled {
		collector := metrics.NewCollector().WithRuntime()
		svcOpts = append(svcOpts, formcheck.WithMetrics(metrics.NewValidationMetrics(collector)))
		routerOpts.HTTPMetrics = metrics.NewHTTPMetrics(collector)
		routerOpts.Metrics = collector.Handler()
	}
	routerOpts.Service = formcheck.New(svcOpts...)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, formcheck.Router(routerOpts)); err != nil {
		log.ErrorContext(ctx, "server stopped with error", logger.Component("main"), logger.Error(err))
		return exitError
	}
	return exitOK
}
