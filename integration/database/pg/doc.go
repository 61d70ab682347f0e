// Package pg connects to PostgreSQL through pgx and stores slug reservations.
//
// Connect builds a pgxpool.Pool from Config and pings it with exponential
// backoff (sethvargo/go-retry) before returning, so a service started next to
// its database waits for it instead of failing:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg) // PG_CONN_URL, PG_MAX_OPEN_CONNS, ...
//	pool, err := pg.Connect(ctx, cfg)
//
// Healthcheck returns a ping function suitable for readiness checks.
//
// # Slug store
//
// SlugStore implements slug.Store on a table keyed by (scope, slug). The
// table ships as an embedded goose migration; Migrate applies it and records
// the version in cfg.MigrationsTable (PG_MIGRATIONS_TABLE):
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil { ... }
//	store, err := pg.NewSlugStore(pool, "")
//	alloc, err := slug.NewAllocator(store)
//
// Reserve relies on INSERT ... ON CONFLICT DO NOTHING, so concurrent callers
// across processes never get the same slug. When the context carries a
// transaction (WithTx) the statements run inside it, and the reservation is
// rolled back together with the row that would have used the slug:
//
//	tx, _ := pool.Begin(ctx)
//	ctx = pg.WithTx(ctx, tx)
//	s, err := alloc.Allocate(ctx, "posts", title)
//
// Connection errors are joined with ErrFailedToParseDBConfig,
// ErrFailedToOpenDBConnection or ErrHealthcheckFailed, and migration errors
// with ErrFailedToApplyMigrations. All can be matched with errors.Is.
package pg
