package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per config type.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newCache()

	defaultEnvLoaded sync.Once

	structValidator = validator.New(validator.WithRequiredStructEnabled())
)

func newCache() *cache {
	return &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// LoadEnv loads the given .env files into the process environment.
// Variables that are already set win over the files.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Parse fills v from the environment and checks its `validate` tags.
// Unlike Load it never caches.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := structValidator.Struct(v); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// Load parses the environment into v once per config type and serves later
// calls for the same type from the cache. The default .env file, when
// present, is loaded before the first parse.
//
//	type ServerConfig struct {
//		Addr  string `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
//		Level string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	if globalCache.get(key, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, ok := globalCache.onces[key]
	if !ok {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if err = Parse(v); err != nil {
			return
		}
		globalCache.mu.Lock()
		globalCache.values[key] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		// allow a retry once the environment is fixed
		globalCache.mu.Lock()
		delete(globalCache.onces, key)
		globalCache.mu.Unlock()
		return err
	}

	if globalCache.get(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad is Load that panics on failure. Use it for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached config. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()
}

func (c *cache) get(key string, dst any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.values[key]
	if !ok {
		return false
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(cached))
	return true
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
