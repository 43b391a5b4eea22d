package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// consumeScript refills and drains one bucket atomically. Time comes from
// the caller so every instance sharing the store follows one clock source.
var consumeScript = redis.NewScript(`
local capacity  = tonumber(ARGV[1])
local rate      = tonumber(ARGV[2])
local interval  = tonumber(ARGV[3])
local now       = tonumber(ARGV[4])
local requested = tonumber(ARGV[5])
local ttl       = tonumber(ARGV[6])

local state  = redis.call('HMGET', KEYS[1], 'tokens', 'last_refill')
local tokens = tonumber(state[1])
local last   = tonumber(state[2])
if tokens == nil or last == nil then
	tokens = capacity
	last = now
end

local intervals = math.floor((now - last) / interval)
local cap_intervals = math.floor(capacity / rate) + 1
if intervals > cap_intervals then
	intervals = cap_intervals
end
if intervals > 0 then
	tokens = math.min(tokens + intervals * rate, capacity)
	last = now
end

local remaining
if tokens < requested then
	remaining = tokens - requested
else
	tokens = tokens - requested
	remaining = tokens
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'last_refill', last)
redis.call('PEXPIRE', KEYS[1], ttl)
return {remaining, last}
`)

// RedisStore keeps buckets in Redis so several instances share one limit.
// Buckets expire once they would have refilled completely.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces bucket keys. Defaults to "formguard:ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.prefix = prefix
	}
}

func WithRedisClock(now func() time.Time) RedisStoreOption {
	return func(rs *RedisStore) {
		if now != nil {
			rs.now = now
		}
	}
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{
		client: client,
		prefix: "formguard:ratelimit:",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	interval := max(cfg.RefillInterval.Milliseconds(), 1)
	ttl := interval * int64(cfg.Capacity/cfg.RefillRate+1)

	vals, err := consumeScript.Run(ctx, rs.client, []string{rs.prefix + key},
		cfg.Capacity,
		cfg.RefillRate,
		interval,
		rs.now().UnixMilli(),
		tokens,
		ttl,
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("ratelimiter: redis consume %q: %w", key, err)
	}
	if len(vals) != 2 {
		return 0, time.Time{}, fmt.Errorf("ratelimiter: redis consume %q: unexpected reply %v", key, vals)
	}

	resetAt := time.UnixMilli(vals[1]).Add(time.Duration(interval) * time.Millisecond)
	return int(vals[0]), resetAt, nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return fmt.Errorf("ratelimiter: redis reset %q: %w", key, err)
	}
	return nil
}
