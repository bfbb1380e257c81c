package adapter

import (
	"context"
	"os"
	"testing"
	"time"
)

// Runs against a live server only when MONGO_TEST_URL is set.
func TestMongoCollection(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URL")
	if uri == "" {
		t.Skip("MONGO_TEST_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := NewMongoStore(ctx, uri, "campus_security_test")
	if err != nil {
		t.Fatalf("NewMongoStore() error = %v", err)
	}
	t.Cleanup(func() {
		_ = store.db.Drop(context.Background())
		_ = store.Close(context.Background())
	})

	coll := store.Collections().Alerts
	if _, err := coll.DeleteMany(ctx, nil); err != nil {
		t.Fatalf("DeleteMany() error = %v", err)
	}
	testCollection(t, coll)
}
