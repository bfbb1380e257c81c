package adapter

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStoreFromClient(context.Background(), redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test")
	if err != nil {
		t.Fatalf("NewRedisStoreFromClient() error = %v", err)
	}
	t.Cleanup(func() { store.Close(context.Background()) })
	return store, mr
}

func TestRedisCollection(t *testing.T) {
	store, _ := newTestRedisStore(t)
	testCollection(t, store.Collections().Alerts)
}

func TestRedisCollection_KeyLayout(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Collections().Alerts.InsertOne(ctx, alertAt("a1", 0, false)); err != nil {
		t.Fatalf("InsertOne() error = %v", err)
	}

	key := "test:" + port.AlertsCollection
	if !mr.Exists(key) {
		t.Fatalf("expected hash %q to exist, keys = %v", key, mr.Keys())
	}
	if v := mr.HGet(key, "a1"); v == "" {
		t.Errorf("expected field a1 in %q", key)
	}
}

func TestRedisCollection_FindOneByFilterOtherThanID(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	coll := store.Collections().Devices

	d := domain.Device{ID: "d1", Name: "Core Switch", DeviceType: domain.DeviceSwitch, Status: "active", Connections: []string{}}
	if err := coll.InsertOne(ctx, d); err != nil {
		t.Fatalf("InsertOne() error = %v", err)
	}

	got, err := coll.FindOne(ctx, port.Filter{"name": "Core Switch"})
	if err != nil {
		t.Fatalf("FindOne() error = %v", err)
	}
	if got.ID != "d1" {
		t.Errorf("FindOne() id = %q, want d1", got.ID)
	}

	if _, err := coll.FindOne(ctx, port.Filter{"name": "nope"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindOne(nope) error = %v, want ErrNotFound", err)
	}
}

func TestNewRedisStore_BadURL(t *testing.T) {
	if _, err := NewRedisStore(context.Background(), "not a url", "test"); err == nil {
		t.Error("NewRedisStore() with bad url succeeded, want error")
	}
}

func TestRedisCollection_StableNativeOrder(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	coll := store.Collections().Alerts

	// two documents share a timestamp; the id decides between them
	for _, a := range []domain.Alert{
		alertAt("e", 4, false),
		alertAt("b", 1, false),
		alertAt("d", 2, false),
		alertAt("c", 2, false),
		alertAt("a", 3, false),
	} {
		if err := coll.InsertOne(ctx, a); err != nil {
			t.Fatalf("InsertOne() error = %v", err)
		}
	}

	want := []string{"b", "c", "d", "a", "e"}
	for i := 0; i < 10; i++ {
		got, err := coll.Find(ctx, nil, port.FindOptions{})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if !equalStrings(ids(got), want) {
			t.Fatalf("Find() #%d ids = %v, want %v", i+1, ids(got), want)
		}
	}

	desc, err := coll.Find(ctx, nil, port.FindOptions{SortField: "created_at", Descending: true})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if want := []string{"e", "a", "c", "d", "b"}; !equalStrings(ids(desc), want) {
		t.Errorf("Find(descending) ids = %v, want %v", ids(desc), want)
	}
}
