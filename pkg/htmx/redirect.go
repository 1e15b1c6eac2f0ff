package htmx

import "net/http"

// Redirect performs a 302 redirect for both HTMX and regular requests.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusFound)
}

// RedirectWithStatus redirects with a custom status code.
// HTMX requests get HX-Redirect with 200; the browser follows it client-side.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if r.Header.Get(HeaderHXRequest) == "true" {
		w.Header().Set(HeaderHXRedirect, targetURL)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, targetURL, status)
}
