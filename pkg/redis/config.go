package redis

import "time"

// Config describes the Redis connection. An empty ConnectionURL means Redis
// is not used and callers fall back to in-process state.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" validate:"omitempty,url"` // redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3" validate:"gte=0"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s" validate:"gte=0"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s" validate:"gte=0"`
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
