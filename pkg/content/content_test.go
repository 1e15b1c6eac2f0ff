package content_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webapp/pkg/content"
)

const sample = `
pages:
  About:
    title: "<b>About</b> & us"
    message: Your application description page.
    body: |
      We build **small** web apps. See [docs](https://example.com).

      | a | b |
      |---|---|
      | 1 | 2 |
  contact:
    title: Contact
    message: Your contact page.
    body: |
      Write to us.

      <script>alert('xss')</script>

      [click](javascript:alert(1))
`

func TestParse(t *testing.T) {
	t.Parallel()

	pages, err := content.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "contact"}, pages.Names())

	t.Run("markdown rendered", func(t *testing.T) {
		t.Parallel()

		about, ok := pages.Get("about")
		require.True(t, ok)

		body := string(about.Body)
		assert.Contains(t, body, "<strong>small</strong>")
		assert.Contains(t, body, `href="https://example.com"`)
		assert.Contains(t, body, `rel="nofollow"`)
		assert.Contains(t, body, "<table>")
	})

	t.Run("plain text fields stripped", func(t *testing.T) {
		t.Parallel()

		about, ok := pages.Get("ABOUT")
		require.True(t, ok)
		assert.Equal(t, "About & us", about.Title)
		assert.Equal(t, "Your application description page.", about.Message)
		assert.Equal(t, "about", about.Name)
	})

	t.Run("unsafe markup removed", func(t *testing.T) {
		t.Parallel()

		contact, ok := pages.Get("contact")
		require.True(t, ok)

		body := string(contact.Body)
		assert.Contains(t, body, "Write to us.")
		assert.NotContains(t, body, "<script")
		assert.NotContains(t, body, "javascript:")
	})

	t.Run("missing page", func(t *testing.T) {
		t.Parallel()

		_, ok := pages.Get("pricing")
		assert.False(t, ok)
	})
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty document", input: "", wantErr: content.ErrEmptyContent},
		{name: "no pages", input: "pages: {}", wantErr: content.ErrEmptyContent},
		{name: "malformed yaml", input: "pages: [", wantErr: content.ErrInvalidContent},
		{name: "wrong shape", input: "pages: [a, b]", wantErr: content.ErrInvalidContent},
		{name: "duplicate names", input: "pages:\n  About: {title: a}\n  about: {title: b}", wantErr: content.ErrInvalidContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pages, err := content.Parse([]byte(tt.input))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, pages)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"content.yaml": {Data: []byte(sample)},
	}

	pages, err := content.Load(fsys, "content.yaml")
	require.NoError(t, err)
	_, ok := pages.Get("contact")
	assert.True(t, ok)

	_, err = content.Load(fsys, "missing.yaml")
	assert.ErrorIs(t, err, content.ErrInvalidContent)
}

func TestPages_NilReceiver(t *testing.T) {
	t.Parallel()

	var pages *content.Pages
	_, ok := pages.Get("about")
	assert.False(t, ok)
	assert.Nil(t, pages.Names())
}
