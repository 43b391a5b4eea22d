// Package redis connects to a Redis server for state shared between
// formguard instances, such as field-check rate limit buckets.
//
// Config is populated from REDIS_* environment variables. Leaving REDIS_URL
// empty disables Redis entirely:
//
//	var cfg redis.Config
//	if err := config.Parse(&cfg); err != nil {
//		return err
//	}
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//	}
//
// Healthcheck adapts a client into a readiness probe for
// httpserver.HealthCheckHandler.
package redis
