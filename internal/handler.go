package internal

// Handler declares routes on a router.
//
// Example:
//
//	type HomeController struct{}
//
//	func (h *HomeController) Routes(r webapp.Router) {
//	    r.GET("/", webapp.Action(h.Index))
//	    r.GET("/contact", webapp.Action(h.Contact))
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request over to the ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect the request, short-circuit processing,
// or decorate the response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
