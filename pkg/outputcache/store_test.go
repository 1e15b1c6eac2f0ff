package outputcache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webapp/pkg/outputcache"
)

// failingStore always misses and refuses writes.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (failingStore) Delete(context.Context, string) error { return nil }

func TestCache_FetchMissThenHit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = m.Close() })
	cache := outputcache.New(m)

	var calls atomic.Int32
	render := func(context.Context) ([]byte, error) {
		calls.Add(1)
		return []byte("<h2>Contact</h2>"), nil
	}

	first, err := cache.Fetch(ctx, "t-miss-hit", time.Minute, render)
	require.NoError(t, err)
	second, err := cache.Fetch(ctx, "t-miss-hit", time.Minute, render)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_FetchRenderErrorNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = m.Close() })
	cache := outputcache.New(m)

	boom := errors.New("boom")
	_, err := cache.Fetch(ctx, "t-render-err", time.Minute, func(context.Context) ([]byte, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	_, err = m.Get(ctx, "t-render-err")
	assert.ErrorIs(t, err, outputcache.ErrNotFound)
}

func TestCache_FetchStoreFailureFallsBackToRender(t *testing.T) {
	t.Parallel()

	body, err := outputcache.New(failingStore{}).Fetch(context.Background(), "t-store-fail", time.Minute, func(context.Context) ([]byte, error) {
		return []byte("fresh"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(body))
}

func TestCache_FetchConcurrentMissesRenderOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = m.Close() })
	cache := outputcache.New(m)

	var calls atomic.Int32
	release := make(chan struct{})
	render := func(context.Context) ([]byte, error) {
		calls.Add(1)
		<-release
		return []byte("page"), nil
	}

	const n = 10
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
	)
	results := make([]string, n)
	started.Add(n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			body, err := cache.Fetch(ctx, "t-concurrent", time.Minute, render)
			assert.NoError(t, err)
			results[i] = string(body)
		}()
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "page", r)
	}
}

func TestCache_FetchIsScopedToStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	b := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = a.Close(); _ = b.Close() })
	cacheA, cacheB := outputcache.New(a), outputcache.New(b)

	inA := make(chan struct{})
	release := make(chan struct{})
	done := make(chan []byte)
	go func() {
		body, err := cacheA.Fetch(ctx, "Contact|page|/contact", time.Minute, func(context.Context) ([]byte, error) {
			close(inA)
			<-release
			return []byte("from a"), nil
		})
		assert.NoError(t, err)
		done <- body
	}()

	<-inA
	body, err := cacheB.Fetch(ctx, "Contact|page|/contact", time.Minute, func(context.Context) ([]byte, error) {
		return []byte("from b"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "from b", string(body))

	close(release)
	assert.Equal(t, "from a", string(<-done))

	got, err := b.Get(ctx, "Contact|page|/contact")
	require.NoError(t, err)
	assert.Equal(t, "from b", string(got))
}
