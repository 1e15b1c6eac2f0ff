// Package logger builds the application's structured logger on top of log/slog.
//
// Logs are written as JSON. Context extractors add request-scoped values
// (such as the request ID) to every record logged with a *Context method,
// and an optional Sentry handler receives warnings and errors alongside stdout.
//
//	log := logger.New(
//	    logger.WithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))),
//	    logger.WithExtractors(middlewares.RequestIDExtractor()),
//	    logger.WithSentry(logger.SentryConfig{DSN: os.Getenv("SENTRY_DSN")}),
//	)
//
// With an empty Sentry DSN the logger writes to stdout only, so development
// and production share one code path.
package logger
