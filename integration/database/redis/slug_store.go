package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SlugStore reserves slugs with SETNX so concurrent processes sharing one
// Redis never hand out the same slug twice. It implements slug.Store.
// Keys look like "slug:5:posts:hello-world".
type SlugStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// SlugStoreOption configures a SlugStore.
type SlugStoreOption func(*SlugStore)

// WithKeyPrefix sets the key namespace. Default: "slug".
func WithKeyPrefix(prefix string) SlugStoreOption {
	return func(s *SlugStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithTTL makes reservations expire. Zero keeps them forever.
func WithTTL(ttl time.Duration) SlugStoreOption {
	return func(s *SlugStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewSlugStore creates a SlugStore on top of client.
func NewSlugStore(client redis.Cmdable, opts ...SlugStoreOption) *SlugStore {
	s := &SlugStore{client: client, prefix: "slug"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSlugStoreFromConfig creates a SlugStore using cfg.KeyPrefix.
func NewSlugStoreFromConfig(client redis.Cmdable, cfg Config, opts ...SlugStoreOption) *SlugStore {
	return NewSlugStore(client, append([]SlugStoreOption{WithKeyPrefix(cfg.KeyPrefix)}, opts...)...)
}

// Reserve sets the slug key if absent and reports whether it did.
func (s *SlugStore) Reserve(ctx context.Context, scope, slug string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(scope, slug), time.Now().Unix(), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis: setnx: %w", err)
	}
	return ok, nil
}

// Release deletes the slug key.
func (s *SlugStore) Release(ctx context.Context, scope, slug string) error {
	if err := s.client.Del(ctx, s.key(scope, slug)).Err(); err != nil {
		return fmt.Errorf("redis: del: %w", err)
	}
	return nil
}

// key is <prefix>:<len(scope)>:<scope>:<slug>. The length makes the split
// between scope and slug unambiguous when either contains ':'.
func (s *SlugStore) key(scope, slug string) string {
	return s.prefix + ":" + strconv.Itoa(len(scope)) + ":" + scope + ":" + slug
}
