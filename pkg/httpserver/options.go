package httpserver

import (
	"log/slog"
	"net"
	"time"
)

// Option configures a Server. Zero and negative durations are ignored so a
// partially filled Config can be passed through unchanged.
type Option func(*options)

type options struct {
	addr              string
	listener          net.Listener
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
}

func defaultOptions() options {
	return options{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   5 * time.Second,
	}
}

func WithAddr(addr string) Option {
	return func(o *options) {
		if addr != "" {
			o.addr = addr
		}
	}
}

// WithListener serves on an already bound listener. The address option is
// ignored and Run closes the listener on return.
func WithListener(ln net.Listener) Option {
	return func(o *options) { o.listener = ln }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return func(o *options) { setPositive(&o.readHeaderTimeout, d) }
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { setPositive(&o.readTimeout, d) }
}

// WithWriteTimeout bounds the whole response, SSE streams included.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { setPositive(&o.writeTimeout, d) }
}

func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) { setPositive(&o.idleTimeout, d) }
}

// WithShutdownTimeout bounds how long in-flight requests may drain before
// connections are closed forcibly.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) { setPositive(&o.shutdownTimeout, d) }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func setPositive(dst *time.Duration, d time.Duration) {
	if d > 0 {
		*dst = d
	}
}
