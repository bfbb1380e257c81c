package adapter

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"testing"
)

func TestMemoryCollection(t *testing.T) {
	store := NewMemoryStore()
	testCollection(t, store.Collections().Alerts)
}

func TestMemoryCollection_NativeOrderIsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[domain.Alert](NewMemoryStore(), port.AlertsCollection)

	for _, id := range []string{"z", "x", "y"} {
		if err := coll.InsertOne(ctx, alertAt(id, 0, false)); err != nil {
			t.Fatalf("InsertOne() error = %v", err)
		}
	}

	got, err := coll.Find(ctx, nil, port.FindOptions{})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if want := []string{"z", "x", "y"}; !equalStrings(ids(got), want) {
		t.Errorf("Find() ids = %v, want %v", ids(got), want)
	}
}

func TestMemoryCollection_CollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cols := store.Collections()

	if err := cols.Alerts.InsertOne(ctx, alertAt("a", 0, false)); err != nil {
		t.Fatalf("InsertOne() error = %v", err)
	}
	n, err := cols.Policies.Count(ctx, nil)
	if err != nil || n != 0 {
		t.Errorf("Policies.Count() = %d, %v, want 0", n, err)
	}
}

func TestMemoryCollection_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collections().Policies

	p := domain.Policy{ID: "p1", Name: "original", Domains: []string{"a.com"}}
	if err := coll.InsertOne(ctx, p); err != nil {
		t.Fatalf("InsertOne() error = %v", err)
	}
	p.Domains[0] = "mutated.com"

	got, err := coll.FindOne(ctx, port.Filter{"id": "p1"})
	if err != nil {
		t.Fatalf("FindOne() error = %v", err)
	}
	got.Name = "changed"

	again, _ := coll.FindOne(ctx, port.Filter{"id": "p1"})
	if again.Name != "original" || again.Domains[0] != "a.com" {
		t.Errorf("stored document was mutated: %+v", again)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
