package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webapp/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()

		got := internal.AsHTTPError(internal.ErrNotFound("not found"))
		require.NotNil(t, got)
		assert.Equal(t, http.StatusNotFound, got.StatusCode())
		assert.Equal(t, "not found", got.Message)
	})

	t.Run("wrapped twice", func(t *testing.T) {
		t.Parallel()

		httpErr := internal.ErrBadRequest("bad")
		err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", httpErr))
		assert.Same(t, httpErr, internal.AsHTTPError(err))
		assert.True(t, internal.IsHTTPError(err))
	})

	t.Run("unrelated and nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, internal.AsHTTPError(errors.New("plain")))
		assert.False(t, internal.IsHTTPError(nil))
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")
	err := internal.ErrServiceUnavailable("try later",
		internal.WithError(cause),
		internal.WithRequestID("req-1"),
	)

	assert.Equal(t, "try later", err.Error())
	assert.Equal(t, "Service Unavailable", err.StatusText())
	assert.Equal(t, "req-1", err.RequestID)
	assert.ErrorIs(t, err, cause)

	titled := internal.NewHTTPError(http.StatusTeapot, "short and stout", internal.WithTitle("Teapot"))
	assert.Equal(t, "Teapot", titled.StatusText())
	assert.Equal(t, http.StatusMethodNotAllowed, internal.ErrMethodNotAllowed("no").Code)
}
