package htmx

// Response headers.
const (
	HeaderHXRedirect = "HX-Redirect"
	HeaderHXRefresh  = "HX-Refresh"
	HeaderHXPushURL  = "HX-Push-Url"
)

// Request headers.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXBoosted    = "HX-Boosted"
	HeaderHXTarget     = "HX-Target"
	HeaderHXCurrentURL = "HX-Current-URL"
)
