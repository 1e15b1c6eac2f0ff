// Package views holds the HTML views of the site as templ components.
//
// Markup lives in the .templ files; run `templ generate` after editing them.
// [Registry] registers every page under the name its controller action
// returns ("Index", "About", "Contact").
package views
