package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/webapp/pkg/htmx"
)

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{name: "no headers", want: false},
		{name: "HX-Request true", headers: map[string]string{"HX-Request": "true"}, want: true},
		{name: "HX-Request false", headers: map[string]string{"HX-Request": "false"}, want: false},
		{name: "boosted request", headers: map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, htmx.IsHTMX(req))
		})
	}
}

func TestVary(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	htmx.Vary(rec)

	assert.Equal(t, "HX-Request", rec.Header().Get("Vary"))
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("HTMX request sets HX-Redirect header and 200 status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.Redirect(rec, req, "/target")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/target", rec.Header().Get("HX-Redirect"))
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("non-HTMX request uses standard HTTP redirect", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		htmx.RedirectWithStatus(rec, req, "/target", http.StatusSeeOther)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/target", rec.Header().Get("Location"))
		assert.Empty(t, rec.Header().Get("HX-Redirect"))
	})
}
