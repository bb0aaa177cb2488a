package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by configuration structs that check themselves
// after parsing. Load returns the Validate error unchanged so callers can
// classify it.
type Validator interface {
	Validate() error
}

var (
	mu         sync.Mutex
	cache      = make(map[reflect.Type]any)
	dotenvOnce sync.Once
)

// Load parses environment variables into v using `env` struct tags.
// The default .env file is read once per process if it exists. Each config type
// is parsed at most once; later calls copy the cached value into v.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if val, ok := any(&parsed).(Validator); ok {
		if err := val.Validate(); err != nil {
			return err
		}
	}

	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load configuration %T: %v", *new(T), err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it reads ".env".
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every parsed configuration. Intended for tests.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
