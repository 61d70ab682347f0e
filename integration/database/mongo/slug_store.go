package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is the subset of *mongo.Collection that SlugStore needs.
type Collection interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error)
}

// SlugStore keeps one document per reserved slug. The document _id is
// {scope, slug}, so the collection's built-in unique _id index decides
// which of two concurrent Reserve calls wins. It implements slug.Store.
type SlugStore struct {
	coll Collection
}

// NewSlugStore creates a SlugStore on coll.
func NewSlugStore(coll Collection) *SlugStore {
	return &SlugStore{coll: coll}
}

// NewSlugStoreFromConfig creates a SlugStore on db's cfg.SlugCollection.
func NewSlugStoreFromConfig(db *mongo.Database, cfg Config) *SlugStore {
	name := cfg.SlugCollection
	if name == "" {
		name = "slugs"
	}
	return NewSlugStore(db.Collection(name))
}

// Reserve inserts the slug document and reports whether it was new.
func (s *SlugStore) Reserve(ctx context.Context, scope, slug string) (bool, error) {
	doc := bson.D{
		{Key: "_id", Value: slugID(scope, slug)},
		{Key: "created_at", Value: time.Now().UTC()},
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("mongo: reserve slug: %w", err)
	}
	return true, nil
}

// Release deletes the slug document.
func (s *SlugStore) Release(ctx context.Context, scope, slug string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: slugID(scope, slug)}}); err != nil {
		return fmt.Errorf("mongo: release slug: %w", err)
	}
	return nil
}

// slugID builds the compound _id. Embedded documents compare field by
// field in order, so the order here must never change.
func slugID(scope, slug string) bson.D {
	return bson.D{{Key: "scope", Value: scope}, {Key: "slug", Value: slug}}
}
