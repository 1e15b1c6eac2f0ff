package internal

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Component is the interface for renderable templates.
// This is compatible with templ.Component.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// ViewData is the payload handed to a view function.
type ViewData map[string]any

// Get returns the value stored under key, or nil.
// Safe to call on a nil ViewData.
func (d ViewData) Get(key string) any {
	if d == nil {
		return nil
	}
	return d[key]
}

// ViewFunc builds the component for a view from its data.
type ViewFunc func(data ViewData) Component

// LayoutFunc wraps a view body into a full page.
// The title is the view name unless the data carries a "title" string.
type LayoutFunc func(title string, body Component) Component

// ViewEngine resolves view names to renderable components.
type ViewEngine interface {
	// Resolve returns the component for the named view.
	// When partial is true the layout is skipped (HTMX swaps).
	// Returns ErrViewNotFound for unknown names.
	Resolve(name string, data ViewData, partial bool) (Component, error)
}

// ViewRegistry is a map-backed ViewEngine.
// Registration is expected during setup; Resolve is safe for concurrent use.
type ViewRegistry struct {
	views  map[string]ViewFunc
	layout LayoutFunc
	mu     sync.RWMutex
}

// NewViewRegistry creates an empty registry.
// A nil layout renders every view as-is.
func NewViewRegistry(layout LayoutFunc) *ViewRegistry {
	return &ViewRegistry{
		views:  make(map[string]ViewFunc),
		layout: layout,
	}
}

// Register adds or replaces a view. Nil functions are ignored.
func (r *ViewRegistry) Register(name string, fn ViewFunc) *ViewRegistry {
	if fn == nil {
		return r
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[name] = fn
	return r
}

// Has reports whether the view is registered.
func (r *ViewRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.views[name]
	return ok
}

func (r *ViewRegistry) Resolve(name string, data ViewData, partial bool) (Component, error) {
	r.mu.RLock()
	fn, ok := r.views[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrViewNotFound, name)
	}

	body := fn(data)
	if partial || r.layout == nil {
		return body, nil
	}

	title := name
	if t, ok := data.Get("title").(string); ok && t != "" {
		title = t
	}
	return r.layout(title, body), nil
}

var _ ViewEngine = (*ViewRegistry)(nil)
