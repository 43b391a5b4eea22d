// Package httpserver runs the formguard HTTP handler with bounded timeouts,
// graceful shutdown and health probes.
//
// The server does not listen for OS signals itself. Callers pass a context
// from signal.NotifyContext and Run returns once in-flight requests have
// drained:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Request contexts derive from a base context that is canceled when shutdown
// begins, so Datastar SSE streams finish promptly. Anything still running
// after the shutdown timeout is closed and Run reports ErrShutdown.
//
// HealthCheckHandler answers liveness probes with ALIVE, or readiness probes
// with READY/NOT_READY when checks are supplied.
//
// Config carries `env` tags (HTTP_ADDR, HTTP_READ_HEADER_TIMEOUT,
// HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT,
// HTTP_SHUTDOWN_TIMEOUT) for config.Load.
package httpserver
