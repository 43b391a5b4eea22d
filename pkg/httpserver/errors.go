package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start or stopped serving unexpectedly.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that in-flight requests did not drain in time.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyStarted is joined with ErrStart when Run is called twice.
	ErrAlreadyStarted = errors.New("server already started")
)
