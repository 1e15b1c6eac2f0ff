package webapp

import (
	"context"
	"io/fs"
	"log/slog"
	"time"

	"github.com/dmitrymomot/webapp/internal"
	"github.com/dmitrymomot/webapp/pkg/logger"
	"github.com/dmitrymomot/webapp/pkg/outputcache"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// ResponseWriter records status and size and rewrites HTMX status codes.
	ResponseWriter = internal.ResponseWriter

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor

	// Component is the interface for renderable templates (templ.Component).
	Component = internal.Component

	// Result is returned by controller actions.
	Result = internal.Result

	// ResultKind identifies the Result variant.
	ResultKind = internal.ResultKind

	// ViewResult renders a named view.
	ViewResult = internal.ViewResult

	// RedirectResult redirects the client.
	RedirectResult = internal.RedirectResult

	// NotFoundResult responds with 404.
	NotFoundResult = internal.NotFoundResult

	// ViewData is the payload handed to a view.
	ViewData = internal.ViewData

	// ViewFunc builds a view component from its data.
	ViewFunc = internal.ViewFunc

	// LayoutFunc wraps a view body into a full page.
	LayoutFunc = internal.LayoutFunc

	// ViewEngine resolves view names to components.
	ViewEngine = internal.ViewEngine

	// ViewRegistry is a map-backed ViewEngine.
	ViewRegistry = internal.ViewRegistry

	// HTTPError carries an HTTP status and a user-facing message.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption
)

// Result kinds.
const (
	KindView     = internal.KindView
	KindRedirect = internal.KindRedirect
	KindNotFound = internal.KindNotFound
)

// Sentinel errors.
var (
	ErrNilResult    = internal.ErrNilResult
	ErrViewNotFound = internal.ErrViewNotFound
	ErrNoViewEngine = internal.ErrNoViewEngine
)

// New creates a new application with the given options.
// The App is immutable after creation.
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// Results

// View creates a ViewResult for the named view.
func View(name string, data ...ViewData) *ViewResult {
	return internal.View(name, data...)
}

// Redirect creates a 302 RedirectResult.
func Redirect(url string) *RedirectResult {
	return internal.Redirect(url)
}

// NotFound creates a NotFoundResult.
func NotFound(message string) *NotFoundResult {
	return internal.NotFound(message)
}

// Action adapts a zero-argument action method to a HandlerFunc.
// A nil result produces a 500 HTTPError wrapping ErrNilResult.
func Action[R Result](fn func() R) HandlerFunc {
	return internal.Action(fn)
}

// NewViewRegistry creates an empty view registry using layout for full pages.
func NewViewRegistry(layout LayoutFunc) *ViewRegistry {
	return internal.NewViewRegistry(layout)
}

// App options

// WithMiddleware adds global middleware, applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles mounts fsys/subDir at pattern.
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler sets the handler for errors returned by handlers.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables /health/live and /health/ready.
//
// Example:
//
//	webapp.WithHealthChecks(
//	    webapp.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLivenessPath overrides the liveness endpoint path.
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath overrides the readiness endpoint path.
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn func(context.Context) error) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// WithLogger creates a JSON logger tagged with component.
//
// Example:
//
//	webapp.WithLogger("web", middlewares.RequestIDExtractor())
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully configured logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithViews sets the view engine.
func WithViews(engine ViewEngine) Option {
	return internal.WithViews(engine)
}

// WithOutputCache caches the rendered output of the listed views.
func WithOutputCache(store outputcache.Store, ttl time.Duration, viewNames ...string) Option {
	return internal.WithOutputCache(store, ttl, viewNames...)
}

// Run options

// Logger sets the logger used by the server runtime.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets how long in-flight requests may take to finish.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function run after the listener is ready.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function run after the server stops.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context; cancelling it triggers shutdown.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Errors

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// WithTitle sets the error page heading.
func WithTitle(title string) HTTPErrorOption {
	return internal.WithTitle(title)
}

// WithRequestID attaches the request ID to the error.
func WithRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

// WithError attaches the underlying cause.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrMethodNotAllowed(message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrServiceUnavailable(message, opts...)
}

// AsHTTPError extracts the HTTPError from an error chain, or nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// IsHTTPError reports whether err carries an HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}
