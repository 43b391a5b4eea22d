package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/formguard/pkg/clientip"
	"github.com/dmitrymomot/formguard/pkg/environment"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/ratelimiter"
	"github.com/dmitrymomot/formguard/pkg/redis"
	"github.com/dmitrymomot/formguard/pkg/requestid"
)

type appConfig struct {
	Env            string `env:"APP_ENV" envDefault:"development" validate:"oneof=development dev staging stage production prod"`
	Name           string `env:"APP_NAME" envDefault:"formguard" validate:"required"`
	LogLevel       string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat      string `env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
	LogFile        string `env:"LOG_FILE"`
	LogMaxSizeMB   int    `env:"LOG_MAX_SIZE_MB" envDefault:"100" validate:"gte=0"`
	LogMaxBackups  int    `env:"LOG_MAX_BACKUPS" envDefault:"5" validate:"gte=0"`
	LogMaxAgeDays  int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28" validate:"gte=0"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	TrustProxy     bool   `env:"TRUST_PROXY" envDefault:"false"`

	HTTP       httpserver.Config
	FieldCheck ratelimiter.Config
	Redis      redis.Config
}

func (c appConfig) environment() environment.Environment {
	return environment.Parse(c.Env)
}

// newLogger builds the process logger. The environment preset picks the
// format and default level; LOG_FORMAT and LOG_LEVEL override them. The
// environment is a static attribute, so no env extractor is registered.
func newLogger(cfg appConfig, out io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(string(cfg.environment()), cfg.Name),
		logger.WithOutput(out),
		logger.WithFile(logger.FileConfig{
			Path:       cfg.LogFile,
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
			Compress:   true,
		}),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}
