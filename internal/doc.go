// Package internal implements the core of the webapp framework.
//
// Import "github.com/dmitrymomot/webapp" instead; it re-exports the public API.
//
// # Core types
//
//   - App: owns the chi router, middleware, view engine, output cache and error handling
//   - Context: request/response access; also a context.Context
//   - Router, Handler, HandlerFunc, Middleware, ErrorHandler: route declaration
//   - Result: what an action returns (ViewResult, RedirectResult, NotFoundResult)
//   - ViewEngine, ViewRegistry: map view names to templ components
//
// # Request flow
//
// chi matches the route, global middleware runs, then the route handler. For
// actions adapted with Action the result is executed against the Context:
// a ViewResult resolves its view (the bare partial for HTMX requests), goes
// through the output cache when the view is cached, and is written with its
// status code. Errors returned anywhere reach the ErrorHandler unless the
// response was already written, in which case they are only logged.
package internal
