// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent across the
// collections packages.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler depending on the
// configured Format and attaches any static attributes:
//
//	log := logger.New(
//		logger.WithEnvironment(app.Env, app.ServiceName),
//		logger.WithLevelName(app.LogLevel),
//	)
//	log.Info("cache replay finished",
//		logger.Container("lru"),
//		logger.Capacity(128),
//		logger.Duration(time.Since(start)),
//	)
//
// # Configuration
//
//   - WithEnvironment: development logs text at debug level, staging and
//     production log JSON at info level. Short names "prod" and "stage" are
//     accepted.
//   - WithFormat, WithLevel, WithLevelName, WithOutput, WithAttr override
//     individual settings. Options apply in order.
//
// WithFormat and WithLevelName panic on invalid input, so misconfiguration
// stops the program at startup.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors:
//
//	log.Info("scenario loaded", logger.Error(err))
package logger
