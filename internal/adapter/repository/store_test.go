package adapter

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"errors"
	"testing"
	"time"
)

func alertAt(id string, minutes int, resolved bool) domain.Alert {
	return domain.Alert{
		ID:          id,
		Title:       "alert " + id,
		Description: "test alert",
		Severity:    domain.SeverityLow,
		SourceIP:    "10.0.0.1",
		Destination: "example.com",
		Resolved:    resolved,
		CreatedAt:   time.Date(2024, 1, 1, 0, minutes, 0, 0, time.UTC),
	}
}

// testCollection runs the behaviour every store backend must share.
func testCollection(t *testing.T, coll port.Collection[domain.Alert]) {
	ctx := context.Background()

	for i, a := range []domain.Alert{
		alertAt("a", 1, false),
		alertAt("b", 3, true),
		alertAt("c", 2, false),
	} {
		if err := coll.InsertOne(ctx, a); err != nil {
			t.Fatalf("InsertOne(%d) error = %v", i, err)
		}
	}

	if err := coll.InsertOne(ctx, alertAt("a", 9, false)); err == nil {
		t.Error("InsertOne() with duplicate id succeeded, want error")
	}

	t.Run("find sorted descending with limit", func(t *testing.T) {
		got, err := coll.Find(ctx, nil, port.FindOptions{SortField: "created_at", Descending: true, Limit: 2})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
			t.Errorf("Find() ids = %v, want [b c]", ids(got))
		}
	})

	t.Run("find with filter", func(t *testing.T) {
		got, err := coll.Find(ctx, port.Filter{"resolved": false}, port.FindOptions{SortField: "created_at"})
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
			t.Errorf("Find() ids = %v, want [a c]", ids(got))
		}
	})

	t.Run("find one", func(t *testing.T) {
		got, err := coll.FindOne(ctx, port.Filter{"id": "c"})
		if err != nil {
			t.Fatalf("FindOne() error = %v", err)
		}
		if got.Title != "alert c" || !got.CreatedAt.Equal(alertAt("c", 2, false).CreatedAt) {
			t.Errorf("FindOne() = %+v", got)
		}

		if _, err := coll.FindOne(ctx, port.Filter{"id": "missing"}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("FindOne(missing) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("count", func(t *testing.T) {
		total, err := coll.Count(ctx, nil)
		if err != nil || total != 3 {
			t.Errorf("Count() = %d, %v, want 3", total, err)
		}
		open, err := coll.Count(ctx, port.Filter{"resolved": false})
		if err != nil || open != 2 {
			t.Errorf("Count(unresolved) = %d, %v, want 2", open, err)
		}
		low, err := coll.Count(ctx, port.Filter{"severity": domain.SeverityLow})
		if err != nil || low != 3 {
			t.Errorf("Count(severity) = %d, %v, want 3", low, err)
		}
	})

	t.Run("update one", func(t *testing.T) {
		resolvedAt := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
		err := coll.UpdateOne(ctx, port.Filter{"id": "a"}, map[string]any{
			"resolved":    true,
			"resolved_at": resolvedAt,
			"id":          "hijacked",
		})
		if err != nil {
			t.Fatalf("UpdateOne() error = %v", err)
		}

		got, err := coll.FindOne(ctx, port.Filter{"id": "a"})
		if err != nil {
			t.Fatalf("FindOne() error = %v", err)
		}
		if !got.Resolved || got.ResolvedAt == nil || !got.ResolvedAt.Equal(resolvedAt) {
			t.Errorf("after UpdateOne() = %+v", got)
		}
		if got.Title != "alert a" {
			t.Errorf("UpdateOne() clobbered title: %q", got.Title)
		}

		err = coll.UpdateOne(ctx, port.Filter{"id": "missing"}, map[string]any{"resolved": true})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateOne(missing) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete one", func(t *testing.T) {
		if err := coll.DeleteOne(ctx, port.Filter{"id": "c"}); err != nil {
			t.Fatalf("DeleteOne() error = %v", err)
		}
		if err := coll.DeleteOne(ctx, port.Filter{"id": "c"}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("second DeleteOne() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete many", func(t *testing.T) {
		n, err := coll.DeleteMany(ctx, port.Filter{})
		if err != nil {
			t.Fatalf("DeleteMany() error = %v", err)
		}
		if n != 2 {
			t.Errorf("DeleteMany() = %d, want 2", n)
		}
		left, _ := coll.Find(ctx, nil, port.FindOptions{})
		if len(left) != 0 {
			t.Errorf("Find() after DeleteMany() = %v", ids(left))
		}
	})
}

func ids(alerts []domain.Alert) []string {
	out := make([]string, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.ID)
	}
	return out
}
