package views

import "github.com/dmitrymomot/webapp"

// SiteName is shown in the header, footer and page titles.
const SiteName = "WebApp"

// Layout wraps body into the full HTML document.
func Layout(title string, body webapp.Component) webapp.Component {
	return document(title, body)
}
