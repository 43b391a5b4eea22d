// Package ratelimiter throttles HTTP endpoints with per-key token buckets.
//
// Live field checks fire on every keystroke, so the form service puts a
// bucket per client address in front of them:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       20,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(bucket)).Post("/fields/{field}/check", check)
//
// Config carries env tags (FIELD_CHECK_BURST, FIELD_CHECK_REFILL,
// FIELD_CHECK_REFILL_INTERVAL) so it can be loaded with config.Load.
//
// MemoryStore keeps buckets per process. RedisStore keeps them in Redis so
// every instance behind a load balancer draws from the same bucket:
//
//	store := ratelimiter.NewRedisStore(client)
//
// A denied request leaves the bucket untouched, so a client hammering the
// endpoint recovers as soon as the next refill lands.
package ratelimiter
