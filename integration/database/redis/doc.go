// Package redis connects to Redis and stores slug reservations in it.
//
// Connect parses a redis:// or rediss:// URL, then pings the server with
// exponential backoff until it answers or the attempts run out:
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  time.Second,
//		ConnectTimeout: 30 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Config carries env tags (REDIS_URL, REDIS_RETRY_ATTEMPTS, REDIS_RETRY_INTERVAL,
// REDIS_CONNECT_TIMEOUT, REDIS_SLUG_PREFIX) for use with core/config.
//
// # Slug reservations
//
// SlugStore implements slug.Store with SETNX on
// "<prefix>:<len(scope)>:<scope>:<slug>", which makes reservation atomic across
// every process sharing the server. The scope length keeps ("a", "b:c") and
// ("a:b", "c") apart:
//
//	store := redis.NewSlugStore(client, redis.WithKeyPrefix("blog"))
//	alloc, _ := slug.NewAllocator(store)
//	s, err := alloc.Allocate(ctx, "posts", "Hello World") // "hello-world", then "hello-world-2"
//
// WithTTL makes reservations expire, useful for drafts that may never be saved.
//
// # Health Checking
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// errors.Is(err, redis.ErrHealthcheckFailed)
//	}
package redis
