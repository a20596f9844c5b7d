// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` in the working directory is optional).
//   - Load parses the environment into any struct using `env` field tags. Every
//     tag is looked up with the COLLECTIONS_ prefix.
//   - Each configuration type is parsed once and cached; ResetCache clears the
//     cache, which is handy in tests.
//   - MustLoadEnv and MustLoad panic instead of returning errors, for callers
//     that cannot continue without configuration.
//
// The App struct gathers the settings used by the collections CLI:
//
//	app, err := config.LoadApp()
//	if err != nil {
//		log.Fatal(err)
//	}
//	c := cache.NewLRUCache[string, []byte](app.CacheCapacity)
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig  – failed to parse env vars into the struct.
//   - ErrLoadingEnvFile – an explicitly requested .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load.
//   - ErrInvalidValue   – App.Validate rejected a setting.
package config
