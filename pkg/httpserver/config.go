package httpserver

import "time"

// Config is the env-driven server configuration. The validate tags are
// checked by config.Load.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s" validate:"gte=0"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s" validate:"gte=0"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s" validate:"gte=0"` // SSE responses stay open, keep this above the longest stream
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s" validate:"gte=0"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s" validate:"gt=0"`
}

// NewFromConfig creates a Server from cfg. Options passed after cfg win.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	return New(append([]Option{
		WithAddr(cfg.Addr),
		WithReadHeaderTimeout(cfg.ReadHeaderTimeout),
		WithReadTimeout(cfg.ReadTimeout),
		WithWriteTimeout(cfg.WriteTimeout),
		WithIdleTimeout(cfg.IdleTimeout),
		WithShutdownTimeout(cfg.ShutdownTimeout),
	}, opts...)...)
}
