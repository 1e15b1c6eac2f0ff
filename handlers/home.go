package handlers

import (
	"github.com/dmitrymomot/webapp"
	"github.com/dmitrymomot/webapp/pkg/content"
	"github.com/dmitrymomot/webapp/views"
)

// HomeController serves the static pages of the site.
// Actions take no input and have no side effects.
type HomeController struct {
	pages *content.Pages
}

// HomeOption configures a HomeController.
type HomeOption func(*HomeController)

// WithPages supplies the copy for the Index and About pages.
func WithPages(pages *content.Pages) HomeOption {
	return func(h *HomeController) {
		h.pages = pages
	}
}

// NewHomeController creates the controller. No options are required.
func NewHomeController(opts ...HomeOption) *HomeController {
	h := &HomeController{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements webapp.Handler.
func (h *HomeController) Routes(r webapp.Router) {
	r.GET("/", webapp.Action(h.Index))
	r.GET("/about", webapp.Action(h.About))
	r.GET("/contact", webapp.Action(h.Contact))
}

// Index renders the home page.
func (h *HomeController) Index() *webapp.ViewResult {
	return webapp.View(views.IndexView, h.pageData("index"))
}

// About renders the about page.
func (h *HomeController) About() *webapp.ViewResult {
	return webapp.View(views.AboutView, h.pageData("about"))
}

// Contact renders the contact page with no view data.
func (h *HomeController) Contact() *webapp.ViewResult {
	return webapp.View(views.ContactView)
}

// pageData returns nil when no content is configured for name.
func (h *HomeController) pageData(name string) webapp.ViewData {
	page, ok := h.pages.Get(name)
	if !ok {
		return nil
	}
	return webapp.ViewData{"page": page, "title": page.Title}
}
