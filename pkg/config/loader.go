package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every env tag when parsing through this package.
const Prefix = "COLLECTIONS_"

var (
	cacheMu sync.Mutex
	cached  = make(map[reflect.Type]any)

	defaultEnvLoaded sync.Once
)

// LoadEnv loads variables from the given .env files into the process
// environment. Later files override earlier ones and the existing
// environment. With no paths it loads ./.env, silently skipping a missing file.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses prefixed environment variables into v.
// Each configuration type is parsed once; later calls for the same type are
// served from cache until ResetCache is called.
//
//	type Limits struct {
//		MaxItems int `env:"MAX_ITEMS" envDefault:"100"` // COLLECTIONS_MAX_ITEMS
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typ := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if c, ok := cached[typ]; ok {
		*v = c.(T)
		return nil
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: Prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cached[typ] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every parsed configuration so the next Load re-reads
// the environment. Intended for tests.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cached = make(map[reflect.Type]any)
}
