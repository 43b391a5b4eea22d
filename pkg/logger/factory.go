package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dmitrymomot/formguard/pkg/environment"
)

// Format is the record encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat accepts json or text in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be %q or %q", s, FormatJSON, FormatText)
	}
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

type Option func(*config)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	file       *lumberjack.Logger
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat panics on anything but FormatJSON or FormatText; use
// ParseFormat for user input.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Sprintf("logger: unknown format %q", f))
	}
	return func(c *config) { c.format = f }
}

func WithTextFormatter() Option {
	return WithFormat(FormatText)
}

// WithOutput replaces stdout. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// FileConfig describes a size-rotated log file.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// WithFile mirrors every record into a rotated file. An empty path is ignored.
func WithFile(fc FileConfig) Option {
	return func(c *config) {
		if fc.Path == "" {
			return
		}
		c.file = &lumberjack.Logger{
			Filename:   fc.Path,
			MaxSize:    fc.MaxSizeMB,
			MaxBackups: fc.MaxBackups,
			MaxAge:     fc.MaxAgeDays,
			Compress:   fc.Compress,
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors adds attributes read from the context of each
// *Context logging call. Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

type preset struct {
	level  slog.Level
	format Format
}

var presets = map[environment.Environment]preset{
	environment.Development: {level: slog.LevelDebug, format: FormatText},
	environment.Staging:     {level: slog.LevelInfo, format: FormatJSON},
	environment.Production:  {level: slog.LevelInfo, format: FormatJSON},
}

// WithEnvironment applies the level and format preset for an APP_ENV value
// (see environment.Parse) and tags every record with env and service.
// An empty service name is left out.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		e := environment.Parse(env)
		p := presets[e]
		c.level, c.format = p.level, p.format
		c.attrs = append(c.attrs, slog.String("env", string(e)))
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

func WithDevelopment(service string) Option {
	return WithEnvironment(string(environment.Development), service)
}

func WithProduction(service string) Option {
	return WithEnvironment(string(environment.Production), service)
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a logger. Without options it writes JSON at info level to
// stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	out := cfg.output
	if cfg.file != nil {
		out = io.MultiWriter(out, cfg.file)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var h slog.Handler
	if cfg.format == FormatText {
		h = slog.NewTextHandler(out, handlerOpts)
	} else {
		h = slog.NewJSONHandler(out, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) > 0 {
		h = &contextHandler{next: h, extractors: cfg.extractors}
	}
	return slog.New(h)
}
