package internal

import "net/http"

// ResultKind identifies the variant of an action Result.
type ResultKind uint8

const (
	KindView ResultKind = iota + 1
	KindRedirect
	KindNotFound
)

func (k ResultKind) String() string {
	switch k {
	case KindView:
		return "view"
	case KindRedirect:
		return "redirect"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result describes how the response to an action is produced.
// Actions return a Result; Action executes it against the request Context.
type Result interface {
	// Kind reports the result variant.
	Kind() ResultKind

	// Execute writes the response, or returns an error for the ErrorHandler.
	Execute(c Context) error
}

// ViewResult renders a named view.
type ViewResult struct {
	// Data is passed to the view function. May be nil.
	Data ViewData

	// ViewName is the registered view to render.
	ViewName string

	// StatusCode defaults to 200 when zero.
	StatusCode int
}

// View creates a ViewResult for the named view.
// An optional data map is passed to the view; only the first one is used.
func View(name string, data ...ViewData) *ViewResult {
	v := &ViewResult{ViewName: name}
	if len(data) > 0 {
		v.Data = data[0]
	}
	return v
}

// WithStatus sets the response status code and returns the result.
func (v *ViewResult) WithStatus(code int) *ViewResult {
	v.StatusCode = code
	return v
}

func (v *ViewResult) Kind() ResultKind { return KindView }

func (v *ViewResult) Execute(c Context) error {
	if v == nil {
		return ErrNilResult
	}
	code := v.StatusCode
	if code == 0 {
		code = http.StatusOK
	}
	return c.RenderView(code, v.ViewName, v.Data)
}

// RedirectResult redirects the client to URL.
// HTMX requests receive an HX-Redirect header with status 200 instead.
type RedirectResult struct {
	URL        string
	StatusCode int
}

// Redirect creates a RedirectResult with status 302 Found.
func Redirect(url string) *RedirectResult {
	return &RedirectResult{URL: url, StatusCode: http.StatusFound}
}

func (r *RedirectResult) Kind() ResultKind { return KindRedirect }

func (r *RedirectResult) Execute(c Context) error {
	if r == nil {
		return ErrNilResult
	}
	code := r.StatusCode
	if code == 0 {
		code = http.StatusFound
	}
	return c.Redirect(code, r.URL)
}

// NotFoundResult reports a missing resource.
// Executing it returns a 404 HTTPError so the ErrorHandler renders the page.
type NotFoundResult struct {
	Message string
}

// NotFound creates a NotFoundResult.
func NotFound(message string) *NotFoundResult {
	return &NotFoundResult{Message: message}
}

func (n *NotFoundResult) Kind() ResultKind { return KindNotFound }

func (n *NotFoundResult) Execute(c Context) error {
	if n == nil {
		return ErrNilResult
	}
	msg := n.Message
	if msg == "" {
		msg = http.StatusText(http.StatusNotFound)
	}
	return ErrNotFound(msg)
}

// Action adapts a zero-argument action method to a HandlerFunc.
// The action runs synchronously; a nil result is reported as ErrNilResult.
//
// Example:
//
//	r.GET("/contact", webapp.Action(h.Contact))
func Action[R Result](fn func() R) HandlerFunc {
	return func(c Context) error {
		res := fn()
		if isNilResult(res) {
			return ErrInternal("internal server error", WithError(ErrNilResult))
		}
		return res.Execute(c)
	}
}

// isNilResult catches both a nil interface and the typed nil pointers
// returned by the result constructors.
func isNilResult(r Result) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *ViewResult:
		return v == nil
	case *RedirectResult:
		return v == nil
	case *NotFoundResult:
		return v == nil
	}
	return false
}

var (
	_ Result = (*ViewResult)(nil)
	_ Result = (*RedirectResult)(nil)
	_ Result = (*NotFoundResult)(nil)
)
