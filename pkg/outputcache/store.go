package outputcache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store keeps rendered output.
type Store interface {
	// Get returns the stored bytes or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// RenderFunc produces the output to cache.
type RenderFunc func(ctx context.Context) ([]byte, error)

// Cache renders through a Store.
// Concurrent misses for one key share a single render. The de-duplication is
// scoped to the Cache, so two caches never hand each other's output back.
type Cache struct {
	store Store
	group singleflight.Group
}

// New creates a Cache over s.
func New(s Store) *Cache {
	return &Cache{store: s}
}

// Fetch returns the cached output for key, rendering and storing it on a miss.
// Store failures are treated as misses, so only render errors are returned.
func (c *Cache) Fetch(ctx context.Context, key string, ttl time.Duration, render RenderFunc) ([]byte, error) {
	if body, err := c.store.Get(ctx, key); err == nil {
		return body, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		body, err := render(ctx)
		if err != nil {
			return nil, err
		}
		_ = c.store.Set(ctx, key, body, ttl)
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	// Shared results must not be mutated by callers.
	body := v.([]byte)
	return append([]byte(nil), body...), nil
}
