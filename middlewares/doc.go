// Package middlewares provides the HTTP middleware used by the web application.
//
// # Request ID
//
// RequestID assigns an ID to each request. An incoming X-Request-ID (or one of
// the configured headers) is reused, otherwise a UUID is generated. The ID is
// echoed in the response and can be attached to every log record:
//
//	app := webapp.New(
//	    webapp.WithLogger("web", middlewares.RequestIDExtractor()),
//	    webapp.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns a panic into a *PanicError returned to the application's
// error handler, which renders the 500 page.
//
// # Access log
//
// AccessLog writes one record per request with method, path, status, size
// and duration.
//
// Register them outermost first:
//
//	webapp.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.AccessLog(),
//	    middlewares.Recover(),
//	)
package middlewares
