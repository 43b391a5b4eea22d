package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

// Server runs one handler until its context ends, then drains in-flight
// requests. A Server is single use.
type Server struct {
	opts  options
	ready chan struct{}

	mu       sync.Mutex
	srv      *http.Server
	addr     net.Addr
	started  bool
	stopOnce sync.Once
	stopErr  error
}

func New(opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Server{opts: o, ready: make(chan struct{})}
}

// Ready is closed once the server accepts connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr is the bound address, nil until Ready is closed.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves handler and blocks until ctx is done or Shutdown is called.
// Request contexts are canceled when shutdown begins so open SSE streams
// end instead of holding the drain open.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	log := s.opts.logger

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyStarted)
	}
	s.started = true

	ln := s.opts.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.opts.addr); err != nil {
			s.mu.Unlock()
			log.ErrorContext(ctx, "http server failed to listen", logger.Component("httpserver"), logger.Error(err))
			return errors.Join(ErrStart, err)
		}
	}

	requests, cancelRequests := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelRequests()

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.opts.readHeaderTimeout,
		ReadTimeout:       s.opts.readTimeout,
		WriteTimeout:      s.opts.writeTimeout,
		IdleTimeout:       s.opts.idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return requests },
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}
	srv.RegisterOnShutdown(cancelRequests)
	s.srv = srv
	s.addr = ln.Addr()
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	close(s.ready)
	log.InfoContext(ctx, "http server listening", logger.Component("httpserver"), slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			// Shutdown was called directly
			return s.waitShutdown()
		}
		log.ErrorContext(ctx, "http server failed", logger.Component("httpserver"), logger.Error(err))
		return errors.Join(ErrStart, err)
	case <-ctx.Done():
	}

	shutdownErr := s.Shutdown(context.WithoutCancel(ctx))
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	if shutdownErr != nil {
		log.ErrorContext(ctx, "http server shutdown incomplete", logger.Component("httpserver"), logger.Error(shutdownErr))
		return shutdownErr
	}
	log.InfoContext(ctx, "http server stopped", logger.Component("httpserver"))
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests for
// at most the shutdown timeout, then closes what is left. It is a no-op
// before Run and safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			_ = srv.Close()
			s.stopErr = errors.Join(ErrShutdown, err)
		}
	})
	return s.stopErr
}

// waitShutdown returns the result of a Shutdown started by another caller.
func (s *Server) waitShutdown() error {
	return s.Shutdown(context.Background())
}
