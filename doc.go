// Package webapp is a small MVC-style web framework built on chi.
//
// Controllers expose zero-argument action methods that return a [Result].
// [Action] adapts such a method to a route handler, executes the result and
// turns a nil result into a 500 response. Keeping actions free of
// request plumbing makes them trivially unit-testable:
//
//	func (h *HomeController) Contact() *webapp.ViewResult {
//	    return webapp.View("Contact")
//	}
//
//	func (h *HomeController) Routes(r webapp.Router) {
//	    r.GET("/contact", webapp.Action(h.Contact))
//	}
//
// # Views
//
// A [ViewResult] names a view that the configured [ViewEngine] resolves to a
// templ component. [ViewRegistry] wraps every view in a layout, except for
// HTMX requests which receive the bare partial:
//
//	registry := webapp.NewViewRegistry(views.Layout).
//	    Register("Contact", views.Contact)
//
//	app := webapp.New(
//	    webapp.WithViews(registry),
//	    webapp.WithHandlers(handlers.NewHomeController()),
//	)
//
// # Output cache
//
// [WithOutputCache] stores the rendered output of selected views in a
// [github.com/dmitrymomot/webapp/pkg/outputcache.Store], in memory or in Redis.
//
// # Shutdown
//
// [App.Run] handles SIGINT/SIGTERM, drains in-flight requests and then runs
// the registered shutdown hooks:
//
//	err := app.Run(":8080",
//	    webapp.Logger(log),
//	    webapp.ShutdownHook(redis.Shutdown(client)),
//	)
package webapp
