package outputcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webapp/pkg/outputcache"
)

func TestMemory_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.Set(ctx, "k", []byte("hello"), time.Minute))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestMemory_GetMissing(t *testing.T) {
	t.Parallel()

	m := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = m.Close() })

	_, err := m.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, outputcache.ErrNotFound)
}

func TestMemory_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, outputcache.ErrNotFound)
}

func TestMemory_NegativeTTLNeverExpires(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(
		outputcache.WithCleanupInterval(0),
		outputcache.WithDefaultTTL(time.Millisecond),
	)
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.Set(ctx, "forever", []byte("v"), -1))
	time.Sleep(10 * time.Millisecond)

	_, err := m.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = m.Close() })

	value := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", value, time.Minute))
	value[0] = 'x'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestMemory_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(outputcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, m.Delete(ctx, "k"))
	require.NoError(t, m.Delete(ctx, "k"))

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, outputcache.ErrNotFound)
}

func TestMemory_MaxEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(
		outputcache.WithCleanupInterval(0),
		outputcache.WithMaxEntries(2),
	)
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Second))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, m.Set(ctx, "c", []byte("3"), time.Minute))

	assert.Equal(t, 2, m.Len())
	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, outputcache.ErrNotFound, "entry closest to expiry is evicted")
}

func TestMemory_Janitor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory(outputcache.WithCleanupInterval(5 * time.Millisecond))
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Millisecond))

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestMemory_Closed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := outputcache.NewMemory()

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.ErrorIs(t, m.Set(ctx, "k", []byte("v"), 0), outputcache.ErrClosed)
	assert.ErrorIs(t, m.Delete(ctx, "k"), outputcache.ErrClosed)
}
