package redis_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugkit/integration/database/redis"
	"github.com/dmitrymomot/slugkit/pkg/slug"
)

// fakeCmdable keeps keys in a map. Only the commands SlugStore uses are implemented.
type fakeCmdable struct {
	goredis.Cmdable

	mu   sync.Mutex
	keys map[string]time.Duration
	err  error
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{keys: make(map[string]time.Duration)}
}

func (f *fakeCmdable) SetNX(_ context.Context, key string, _ any, ttl time.Duration) *goredis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return goredis.NewBoolResult(false, f.err)
	}
	if _, ok := f.keys[key]; ok {
		return goredis.NewBoolResult(false, nil)
	}
	f.keys[key] = ttl
	return goredis.NewBoolResult(true, nil)
}

func (f *fakeCmdable) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return goredis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			delete(f.keys, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

var _ slug.Store = (*redis.SlugStore)(nil)

func TestSlugStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reserves once per key", func(t *testing.T) {
		t.Parallel()
		fake := newFakeCmdable()
		store := redis.NewSlugStore(fake)

		ok, err := store.Reserve(ctx, "posts", "hello")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Reserve(ctx, "posts", "hello")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.Contains(t, fake.keys, "slug:5:posts:hello")
	})

	t.Run("release frees the key", func(t *testing.T) {
		t.Parallel()
		fake := newFakeCmdable()
		store := redis.NewSlugStore(fake, redis.WithKeyPrefix("app"))

		_, err := store.Reserve(ctx, "", "hello")
		require.NoError(t, err)
		require.Contains(t, fake.keys, "app:0::hello")

		require.NoError(t, store.Release(ctx, "", "hello"))
		assert.Empty(t, fake.keys)
	})

	t.Run("ttl is passed through", func(t *testing.T) {
		t.Parallel()
		fake := newFakeCmdable()
		store := redis.NewSlugStoreFromConfig(fake, redis.Config{KeyPrefix: "cfg"}, redis.WithTTL(time.Hour))

		_, err := store.Reserve(ctx, "s", "x")
		require.NoError(t, err)
		assert.Equal(t, time.Hour, fake.keys["cfg:1:s:x"])
	})

	t.Run("colons in scope and slug do not collide", func(t *testing.T) {
		t.Parallel()
		fake := newFakeCmdable()
		store := redis.NewSlugStore(fake)

		ok, err := store.Reserve(ctx, "a", "b:c")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Reserve(ctx, "a:b", "c")
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Len(t, fake.keys, 2)
		assert.Contains(t, fake.keys, "slug:1:a:b:c")
		assert.Contains(t, fake.keys, "slug:3:a:b:c")
	})

	t.Run("errors are wrapped", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection refused")
		fake := newFakeCmdable()
		fake.err = boom
		store := redis.NewSlugStore(fake)

		_, err := store.Reserve(ctx, "", "x")
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, store.Release(ctx, "", "x"), boom)
	})

	t.Run("drives the allocator", func(t *testing.T) {
		t.Parallel()
		a, err := slug.NewAllocator(redis.NewSlugStore(newFakeCmdable()))
		require.NoError(t, err)

		first, err := a.Allocate(ctx, "posts", "Hello World")
		require.NoError(t, err)
		second, err := a.Allocate(ctx, "posts", "Hello World")
		require.NoError(t, err)

		assert.Equal(t, "hello-world", first)
		assert.Equal(t, "hello-world-2", second)
	})
}

func TestConnect_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := redis.Connect(ctx, redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(ctx, redis.Config{ConnectionURL: "http://localhost:6379"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_Live(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  3,
		RetryInterval:  100 * time.Millisecond,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, redis.Healthcheck(client)(ctx))

	store := redis.NewSlugStore(client, redis.WithKeyPrefix("slugkit-test-"+time.Now().Format("150405.000")))
	ok, err := store.Reserve(ctx, "live", "hello")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, "live", "hello")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Release(ctx, "live", "hello"))
}
