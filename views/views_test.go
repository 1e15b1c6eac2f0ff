package views_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webapp"
	"github.com/dmitrymomot/webapp/pkg/content"
	"github.com/dmitrymomot/webapp/views"
)

func render(t *testing.T, c webapp.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := views.Registry()
	for _, name := range []string{views.IndexView, views.AboutView, views.ContactView} {
		assert.True(t, reg.Has(name), name)
	}

	_, err := reg.Resolve("Missing", nil, false)
	assert.ErrorIs(t, err, webapp.ErrViewNotFound)
}

func TestContact(t *testing.T) {
	t.Parallel()

	reg := views.Registry()

	t.Run("full page", func(t *testing.T) {
		t.Parallel()

		c, err := reg.Resolve(views.ContactView, nil, false)
		require.NoError(t, err)

		html := render(t, c)
		assert.Contains(t, html, "<!doctype html>")
		assert.Contains(t, html, "<title>Contact - WebApp</title>")
		assert.Contains(t, html, "<h2>Contact</h2>")
		assert.Contains(t, html, "Your contact page.")
		assert.Contains(t, html, "mailto:support@example.com")
	})

	t.Run("partial", func(t *testing.T) {
		t.Parallel()

		c, err := reg.Resolve(views.ContactView, nil, true)
		require.NoError(t, err)

		html := render(t, c)
		assert.NotContains(t, html, "<html")
		assert.Contains(t, html, "<h2>Contact</h2>")
	})
}

func TestAbout_WithContent(t *testing.T) {
	t.Parallel()

	page := content.Page{
		Title:   "About <us>",
		Message: "Who we are",
		Body:    "<p>We build <strong>things</strong>.</p>",
	}
	html := render(t, views.About(webapp.ViewData{"page": page}))

	assert.Contains(t, html, "<h2>About &lt;us&gt;</h2>")
	assert.Contains(t, html, "<h3>Who we are</h3>")
	assert.Contains(t, html, "<strong>things</strong>")
}

func TestIndex_Defaults(t *testing.T) {
	t.Parallel()

	html := render(t, views.Index(nil))
	assert.Contains(t, html, "<h2>Home</h2>")
	assert.Contains(t, html, `href="/contact"`)
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	t.Run("client error shows message", func(t *testing.T) {
		t.Parallel()

		err := webapp.ErrNotFound("no such page", webapp.WithRequestID("req-1"))
		html := render(t, views.ErrorPage(err))

		assert.Contains(t, html, "404 Not Found")
		assert.Contains(t, html, "no such page")
		assert.Contains(t, html, "req-1")
	})

	t.Run("server error hides message", func(t *testing.T) {
		t.Parallel()

		err := webapp.NewHTTPError(http.StatusInternalServerError, "db password leaked")
		html := render(t, views.ErrorPage(err))

		assert.Contains(t, html, "500 Internal Server Error")
		assert.NotContains(t, html, "db password leaked")
	})
}
