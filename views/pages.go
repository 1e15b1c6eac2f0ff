package views

import (
	"github.com/dmitrymomot/webapp"
	"github.com/dmitrymomot/webapp/pkg/content"
)

// Page view names, matching the controller actions.
const (
	IndexView   = "Index"
	AboutView   = "About"
	ContactView = "Contact"
)

// Registry returns a view registry with every page and the site layout.
func Registry() *webapp.ViewRegistry {
	return webapp.NewViewRegistry(Layout).
		Register(IndexView, Index).
		Register(AboutView, About).
		Register(ContactView, Contact)
}

// pageFrom returns the content page in data, or fallback.
func pageFrom(data webapp.ViewData, fallback content.Page) content.Page {
	if p, ok := data.Get("page").(content.Page); ok {
		if p.Title == "" {
			p.Title = fallback.Title
		}
		return p
	}
	return fallback
}

// Index renders the home page.
func Index(data webapp.ViewData) webapp.Component {
	return indexPage(pageFrom(data, content.Page{
		Title:   "Home",
		Message: "Welcome to " + SiteName + ".",
	}))
}

// About renders the about page.
func About(data webapp.ViewData) webapp.Component {
	return aboutPage(pageFrom(data, content.Page{
		Title:   "About",
		Message: "Your application description page.",
	}))
}

// Contact renders the contact page. It needs no data.
func Contact(data webapp.ViewData) webapp.Component {
	return contactPage(pageFrom(data, content.Page{
		Title:   "Contact",
		Message: "Your contact page.",
	}))
}
