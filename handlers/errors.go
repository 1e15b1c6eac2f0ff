package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/webapp"
	"github.com/dmitrymomot/webapp/middlewares"
	"github.com/dmitrymomot/webapp/views"
)

// ErrorHandler renders HTTP errors as HTML pages inside layout.
// HTMX requests get the bare error fragment.
// Errors that are not HTTPErrors become a 500 and are logged.
func ErrorHandler(layout webapp.LayoutFunc) webapp.ErrorHandler {
	return func(c webapp.Context, err error) error {
		httpErr := webapp.AsHTTPError(err)
		switch {
		case httpErr == nil:
			httpErr = webapp.ErrInternal(http.StatusText(http.StatusInternalServerError), webapp.WithError(err))
			c.LogError("request failed", "error", err)
		case httpErr.StatusCode() >= http.StatusInternalServerError:
			c.LogError("request failed", "error", err, "cause", errors.Unwrap(httpErr))
		default:
			c.LogDebug("request rejected", "status", httpErr.StatusCode(), "error", err)
		}
		if httpErr.RequestID == "" {
			e := *httpErr
			e.RequestID = middlewares.GetRequestID(c)
			httpErr = &e
		}

		body := views.ErrorPage(httpErr)
		if layout == nil || c.IsHTMX() {
			return c.Render(httpErr.StatusCode(), body)
		}
		return c.Render(httpErr.StatusCode(), layout(views.ErrorTitle(httpErr), body))
	}
}

// NotFound is the handler for unmatched routes.
func NotFound(c webapp.Context) error {
	return webapp.ErrNotFound("The page you are looking for does not exist.")
}

// MethodNotAllowed is the handler for routes matched with the wrong method.
func MethodNotAllowed(c webapp.Context) error {
	return webapp.ErrMethodNotAllowed("This method is not supported for the requested resource.")
}
