package config

import (
	"errors"
	"fmt"
)

// App holds the runtime defaults shared by the collections CLI and the
// scenario runner. Every variable carries the COLLECTIONS_ prefix.
type App struct {
	Env         string `env:"ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"collections"`

	// LogLevel overrides the environment profile's level when set.
	LogLevel string `env:"LOG_LEVEL"`

	// CacheCapacity applies to scenarios that do not set their own capacity.
	CacheCapacity int `env:"CACHE_CAPACITY" envDefault:"128"`
	TopK          int `env:"TOPK" envDefault:"10"`

	SyntheticOps  int   `env:"SYNTHETIC_OPS" envDefault:"10000"`
	SyntheticKeys int   `env:"SYNTHETIC_KEYS" envDefault:"256"`
	Seed          int64 `env:"SEED" envDefault:"1"`
}

// Validate reports every field that would make a container panic.
func (a App) Validate() error {
	var errs []error
	if a.CacheCapacity <= 0 {
		errs = append(errs, fmt.Errorf("cache capacity %d: %w", a.CacheCapacity, ErrInvalidValue))
	}
	if a.TopK <= 0 {
		errs = append(errs, fmt.Errorf("top-k size %d: %w", a.TopK, ErrInvalidValue))
	}
	if a.SyntheticOps < 0 {
		errs = append(errs, fmt.Errorf("synthetic ops %d: %w", a.SyntheticOps, ErrInvalidValue))
	}
	if a.SyntheticKeys <= 0 {
		errs = append(errs, fmt.Errorf("synthetic keys %d: %w", a.SyntheticKeys, ErrInvalidValue))
	}
	return errors.Join(errs...)
}

// LoadApp loads and validates the App configuration.
func LoadApp() (App, error) {
	var a App
	if err := Load(&a); err != nil {
		return App{}, err
	}
	if err := a.Validate(); err != nil {
		return App{}, err
	}
	return a, nil
}
