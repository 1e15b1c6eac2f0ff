//go:build integration

package outputcache_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webapp/pkg/outputcache"
	"github.com/dmitrymomot/webapp/pkg/redis"
)

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(ctx).Err()
		_ = client.Close()
	})
	return client
}

func TestRedis_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)
	store := outputcache.NewRedis(client, outputcache.WithPrefix("test"))

	require.NoError(t, store.Set(ctx, "Contact|page|/contact", []byte("<h2>Contact</h2>"), time.Minute))

	got, err := store.Get(ctx, "Contact|page|/contact")
	require.NoError(t, err)
	assert.Equal(t, "<h2>Contact</h2>", string(got))

	exists, err := client.Exists(ctx, "test:Contact|page|/contact").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	require.NoError(t, store.Delete(ctx, "Contact|page|/contact"))
	_, err = store.Get(ctx, "Contact|page|/contact")
	assert.ErrorIs(t, err, outputcache.ErrNotFound)
}

func TestRedis_TTL(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)
	store := outputcache.NewRedis(client, outputcache.WithRedisDefaultTTL(time.Hour))

	require.NoError(t, store.Set(ctx, "default", []byte("v"), 0))
	require.NoError(t, store.Set(ctx, "forever", []byte("v"), -1))

	ttl, err := client.TTL(ctx, "outputcache:default").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	ttl, err = client.TTL(ctx, "outputcache:forever").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)
}

func TestRedis_CacheFetch(t *testing.T) {
	ctx := context.Background()
	cache := outputcache.New(outputcache.NewRedis(newTestRedisClient(t)))

	calls := 0
	render := func(context.Context) ([]byte, error) {
		calls++
		return []byte("page"), nil
	}

	for range 3 {
		body, err := cache.Fetch(ctx, "fetch", time.Minute, render)
		require.NoError(t, err)
		assert.Equal(t, "page", string(body))
	}
	assert.Equal(t, 1, calls)
}
