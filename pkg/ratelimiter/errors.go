package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates a non-positive capacity, refill rate or interval.
	ErrInvalidConfig = errors.New("invalid rate limit configuration")

	// ErrInvalidTokenCount indicates a non-positive token request.
	ErrInvalidTokenCount = errors.New("invalid token count")
)
