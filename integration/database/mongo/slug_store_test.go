package mongo_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	drv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/slugkit/integration/database/mongo"
	"github.com/dmitrymomot/slugkit/pkg/slug"
)

// fakeCollection enforces a unique _id the way the server does.
type fakeCollection struct {
	mu   sync.Mutex
	docs map[[2]string]bson.D
	err  error
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{docs: make(map[[2]string]bson.D)}
}

func docKey(v any) [2]string {
	var id bson.D
	for _, e := range v.(bson.D) {
		if e.Key == "_id" {
			id = e.Value.(bson.D)
		}
	}
	return [2]string{id[0].Value.(string), id[1].Value.(string)}
}

func (f *fakeCollection) InsertOne(_ context.Context, document any, _ ...options.Lister[options.InsertOneOptions]) (*drv.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	key := docKey(document)
	if _, ok := f.docs[key]; ok {
		return nil, drv.WriteException{WriteErrors: drv.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}}}
	}
	f.docs[key] = document.(bson.D)
	return &drv.InsertOneResult{InsertedID: key, Acknowledged: true}, nil
}

func (f *fakeCollection) DeleteOne(_ context.Context, filter any, _ ...options.Lister[options.DeleteOneOptions]) (*drv.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	key := docKey(filter)
	if _, ok := f.docs[key]; !ok {
		return &drv.DeleteResult{Acknowledged: true}, nil
	}
	delete(f.docs, key)
	return &drv.DeleteResult{DeletedCount: 1, Acknowledged: true}, nil
}

var (
	_ slug.Store       = (*mongo.SlugStore)(nil)
	_ mongo.Collection = (*drv.Collection)(nil)
)

func TestSlugStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reserves once per scope and slug", func(t *testing.T) {
		t.Parallel()
		coll := newFakeCollection()
		store := mongo.NewSlugStore(coll)

		ok, err := store.Reserve(ctx, "posts", "hello")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Reserve(ctx, "posts", "hello")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.Reserve(ctx, "pages", "hello")
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Len(t, coll.docs, 2)
	})

	t.Run("document shape", func(t *testing.T) {
		t.Parallel()
		coll := newFakeCollection()
		store := mongo.NewSlugStore(coll)

		_, err := store.Reserve(ctx, "posts", "hello")
		require.NoError(t, err)

		doc := coll.docs[[2]string{"posts", "hello"}]
		require.Len(t, doc, 2)
		assert.Equal(t, "_id", doc[0].Key)
		assert.Equal(t, bson.D{{Key: "scope", Value: "posts"}, {Key: "slug", Value: "hello"}}, doc[0].Value)
		assert.Equal(t, "created_at", doc[1].Key)
		assert.IsType(t, time.Time{}, doc[1].Value)
	})

	t.Run("release frees the slug", func(t *testing.T) {
		t.Parallel()
		coll := newFakeCollection()
		store := mongo.NewSlugStore(coll)

		_, err := store.Reserve(ctx, "", "hello")
		require.NoError(t, err)
		require.NoError(t, store.Release(ctx, "", "hello"))
		require.NoError(t, store.Release(ctx, "", "hello"))
		assert.Empty(t, coll.docs)

		ok, err := store.Reserve(ctx, "", "hello")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("errors are wrapped", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection reset")
		coll := newFakeCollection()
		coll.err = boom
		store := mongo.NewSlugStore(coll)

		ok, err := store.Reserve(ctx, "", "x")
		assert.False(t, ok)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, store.Release(ctx, "", "x"), boom)
	})

	t.Run("other write errors are not collisions", func(t *testing.T) {
		t.Parallel()
		coll := newFakeCollection()
		coll.err = drv.WriteException{WriteErrors: drv.WriteErrors{{Code: 121, Message: "Document failed validation"}}}
		store := mongo.NewSlugStore(coll)

		_, err := store.Reserve(ctx, "", "x")
		require.Error(t, err)
		assert.False(t, drv.IsDuplicateKeyError(err))
	})

	t.Run("drives the allocator", func(t *testing.T) {
		t.Parallel()
		a, err := slug.NewAllocator(mongo.NewSlugStore(newFakeCollection()))
		require.NoError(t, err)

		first, err := a.Allocate(ctx, "posts", "Crème Brûlée")
		require.NoError(t, err)
		second, err := a.Allocate(ctx, "posts", "creme brulee")
		require.NoError(t, err)

		assert.Equal(t, "creme-brulee", first)
		assert.Equal(t, "creme-brulee-2", second)
	})
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, err = mongo.New(ctx, mongo.Config{
		ConnectionURL:  "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100",
		ConnectTimeout: 100 * time.Millisecond,
		RetryAttempts:  1,
	})
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestNew_Live(t *testing.T) {
	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set")
	}

	ctx := context.Background()
	db, err := mongo.NewWithDatabase(ctx, mongo.Config{
		ConnectionURL: url,
		RetryAttempts: 3,
		RetryInterval: 100 * time.Millisecond,
	}, "slugkit_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Client().Disconnect(context.Background()) })

	require.NoError(t, mongo.Healthcheck(db.Client())(ctx))

	store := mongo.NewSlugStoreFromConfig(db, mongo.Config{SlugCollection: "slugs_" + time.Now().Format("150405000")})
	ok, err := store.Reserve(ctx, "live", "hello")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, "live", "hello")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Release(ctx, "live", "hello"))
}
