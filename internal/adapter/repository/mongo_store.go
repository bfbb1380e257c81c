package adapter

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore holds the client and database shared by all Mongo collections.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to uri and selects dbName
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	s := &MongoStore{client: client, db: client.Database(dbName)}
	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Printf("[Store] Connected to mongo database %q", dbName)
	return s, nil
}

// ensureIndexes makes the application "id" field unique in every collection.
func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	for _, name := range []string{port.PoliciesCollection, port.DevicesCollection, port.AlertsCollection} {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: idField, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", name, err)
		}
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type mongoCollection[T any] struct {
	coll *mongo.Collection
}

// NewMongoCollection returns a typed view over the named collection.
func NewMongoCollection[T any](store *MongoStore, name string) port.Collection[T] {
	return &mongoCollection[T]{coll: store.db.Collection(name)}
}

func toBSON(filter port.Filter) bson.M {
	m := bson.M{}
	for k, v := range filter {
		m[k] = v
	}
	return m
}

func (c *mongoCollection[T]) Find(ctx context.Context, filter port.Filter, opts port.FindOptions) ([]T, error) {
	findOpts := options.Find()
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.SortField != "" {
		order := 1
		if opts.Descending {
			order = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortField, Value: order}})
	}

	cursor, err := c.coll.Find(ctx, toBSON(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.coll.Name(), err)
	}
	return docs, nil
}

func (c *mongoCollection[T]) FindOne(ctx context.Context, filter port.Filter) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, toBSON(filter)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find in %s: %w", c.coll.Name(), err)
	}
	return &doc, nil
}

func (c *mongoCollection[T]) InsertOne(ctx context.Context, doc T) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c *mongoCollection[T]) UpdateOne(ctx context.Context, filter port.Filter, set map[string]any) error {
	fields := bson.M{}
	for k, v := range set {
		if k == idField {
			continue
		}
		fields[k] = v
	}

	result, err := c.coll.UpdateOne(ctx, toBSON(filter), bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", c.coll.Name(), err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *mongoCollection[T]) DeleteOne(ctx context.Context, filter port.Filter) error {
	result, err := c.coll.DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", c.coll.Name(), err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *mongoCollection[T]) DeleteMany(ctx context.Context, filter port.Filter) (int64, error) {
	result, err := c.coll.DeleteMany(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to clear %s: %w", c.coll.Name(), err)
	}
	return result.DeletedCount, nil
}

func (c *mongoCollection[T]) Count(ctx context.Context, filter port.Filter) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", c.coll.Name(), err)
	}
	return n, nil
}

// Collections returns the dashboard collections held by this store.
func (s *MongoStore) Collections() port.Collections {
	return port.Collections{
		Policies: NewMongoCollection[domain.Policy](s, port.PoliciesCollection),
		Devices:  NewMongoCollection[domain.Device](s, port.DevicesCollection),
		Alerts:   NewMongoCollection[domain.Alert](s, port.AlertsCollection),
	}
}
