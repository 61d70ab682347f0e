// Package mongo connects to MongoDB through the official v2 driver and
// stores slug reservations.
//
// New applies Config to the client options and pings the primary with
// exponential backoff (sethvargo/go-retry), which covers Atlas cold starts
// of several seconds:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg) // MONGODB_URL, MONGODB_MAX_POOL_SIZE, ...
//	db, err := mongo.NewWithDatabase(ctx, cfg, cfg.Database)
//	defer db.Client().Disconnect(ctx)
//
// Healthcheck returns a ping function for readiness checks.
//
// # Slug store
//
// SlugStore implements slug.Store with one document per slug:
//
//	{"_id": {"scope": "posts", "slug": "hello-world"}, "created_at": ...}
//
// Reserve is a plain InsertOne. A duplicate key error means the slug is
// taken and is reported as false, not as an error. No extra index is needed
// because _id is always unique.
//
//	store := mongo.NewSlugStoreFromConfig(db, cfg)
//	alloc, err := slug.NewAllocator(store)
//
// Connection errors are joined with ErrFailedToConnectToMongo or
// ErrHealthcheckFailed and can be matched with errors.Is.
package mongo
