// Package htmx provides helpers for serving HTMX requests.
//
// HTMX issues ordinary HTTP requests marked with the HX-Request header and
// swaps the returned HTML into the page. Handlers use IsHTMX to decide between
// a full page and a partial, and Redirect to send a client-side redirect that
// HTMX understands.
//
//	if htmx.IsHTMX(r) {
//	    // render the fragment only
//	}
//
// HTMX only swaps 2xx responses, which is why RedirectWithStatus answers HTMX
// requests with 200 and an HX-Redirect header instead of a 3xx.
package htmx
