package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.Status())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, rw.Written())
}

func TestResponseWriter_HTMXRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code int
	}{
		{"400", http.StatusBadRequest},
		{"404", http.StatusNotFound},
		{"500", http.StatusInternalServerError},
		{"302", http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			rw := NewResponseWriter(w, true)
			rw.WriteHeader(tt.code)

			assert.Equal(t, http.StatusOK, w.Code, "client sees 200")
			assert.Equal(t, tt.code, rw.Status(), "status keeps the original code")
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	assert.False(t, rw.Written())

	n, err := rw.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	_, _ = rw.Write([]byte(" world"))

	assert.True(t, rw.Written())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(11), rw.Size())
	assert.Equal(t, "hello world", w.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	assert.Same(t, w, rw.Unwrap())

	rw.Flush()
	assert.True(t, w.Flushed)

	_, _, err := rw.Hijack()
	assert.ErrorIs(t, err, http.ErrNotSupported)
}

func TestNewContext_ReusesResponseWriter(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	outer := newContext(rec, req, &App{})
	inner := newContext(outer.Response(), req, &App{})
	assert.Same(t, outer.ResponseWriter(), inner.ResponseWriter())

	inner.Response().WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, outer.ResponseWriter().Status())
	assert.Equal(t, http.StatusOK, rec.Code)
}
