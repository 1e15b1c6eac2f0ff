package views

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/webapp"
)

// ErrorTitle is the page title used for error pages.
func ErrorTitle(err *webapp.HTTPError) string {
	return strconv.Itoa(err.StatusCode()) + " " + err.StatusText()
}

// ErrorPage renders the body of an error page.
// Server errors never show the underlying message.
func ErrorPage(err *webapp.HTTPError) webapp.Component {
	message := err.Message
	if err.StatusCode() >= http.StatusInternalServerError {
		message = "Something went wrong on our side. Please try again later."
	}
	return errorPage(ErrorTitle(err), message, err.RequestID)
}
