// Package config loads typed application configuration from environment
// variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` for
// loading and parsing, and checks the parsed struct with
// `github.com/go-playground/validator/v10` so range and enum mistakes fail at
// startup rather than at first use:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//     Load also tries the default `.env` once on first use.
//   - Parse fills a struct from `env` tags and checks its `validate` tags.
//   - Load does the same but caches each config type for the lifetime of the
//     process; MustLoad panics instead of returning an error.
//   - ResetCache clears the cache between tests.
//
// # Usage
//
//	type AppConfig struct {
//	    Env      string `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels below and can be matched with errors.Is:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrInvalidConfig  – the parsed struct failed its validate tags.
//   - ErrLoadingEnvFile – an explicit .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load or Parse.
//
// A failed Load is not cached; fixing the environment and calling Load again
// re-parses.
package config
