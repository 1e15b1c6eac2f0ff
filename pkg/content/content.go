package content

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"html/template"
	"io/fs"
	"maps"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Page is the rendered copy of a single page.
type Page struct {
	Name    string
	Title   string
	Message string
	Body    template.HTML
}

// Pages is an immutable set of pages keyed by name.
type Pages struct {
	pages map[string]Page
}

type file struct {
	Pages map[string]struct {
		Title   string `yaml:"title"`
		Message string `yaml:"message"`
		Body    string `yaml:"body"`
	} `yaml:"pages"`
}

// Load reads and renders the content file at path in fsys.
func Load(fsys fs.FS, path string) (*Pages, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Join(ErrInvalidContent, err)
	}
	return Parse(data)
}

// Parse renders a YAML content document.
func Parse(data []byte) (*Pages, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrInvalidContent, err)
	}
	if len(f.Pages) == 0 {
		return nil, ErrEmptyContent
	}

	r := newRenderer()
	pages := make(map[string]Page, len(f.Pages))
	for name, p := range f.Pages {
		key := normalize(name)
		if key == "" {
			return nil, fmt.Errorf("%w: page with empty name", ErrInvalidContent)
		}
		if _, dup := pages[key]; dup {
			return nil, fmt.Errorf("%w: duplicate page %q", ErrInvalidContent, name)
		}

		body, err := r.markdown(p.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: page %q: %w", ErrInvalidContent, name, err)
		}
		pages[key] = Page{
			Name:    key,
			Title:   r.text(p.Title),
			Message: r.text(p.Message),
			Body:    body,
		}
	}

	return &Pages{pages: pages}, nil
}

// Get returns the page by name. Names are case-insensitive.
// Safe to call on a nil receiver.
func (p *Pages) Get(name string) (Page, bool) {
	if p == nil {
		return Page{}, false
	}
	page, ok := p.pages[normalize(name)]
	return page, ok
}

// Names returns the page names in sorted order.
func (p *Pages) Names() []string {
	if p == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(p.pages))
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type renderer struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func newRenderer() *renderer {
	return &renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

func (r *renderer) markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(r.ugc.SanitizeBytes(buf.Bytes())), nil
}

// text strips markup. bluemonday escapes what remains, so entities are
// unescaped again to keep the value plain text for templ to escape once.
func (r *renderer) text(s string) string {
	return strings.TrimSpace(html.UnescapeString(r.strict.Sanitize(s)))
}
