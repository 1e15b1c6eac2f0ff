package htmx

import "net/http"

// IsHTMX returns true if the request originated from HTMX.
// Boosted requests (hx-boost) expect a full page, so they are not counted.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true" && !IsBoosted(r)
}

// IsBoosted returns true for requests issued by an hx-boost link or form.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// Vary marks the response as dependent on the HX-Request header,
// so shared caches keep full pages and partials apart.
func Vary(w http.ResponseWriter) {
	w.Header().Add("Vary", HeaderHXRequest)
}
