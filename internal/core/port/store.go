package port

import (
	"campus_security_backend/internal/core/domain"
	"context"
)

// Collection names, shared by every store backend.
const (
	PoliciesCollection = "web_filtering_policies"
	DevicesCollection  = "network_devices"
	AlertsCollection   = "security_alerts"
)

// Filter selects documents whose top-level fields equal the given values.
// An empty filter matches every document.
type Filter map[string]any

// FindOptions bounds and orders a Find.
type FindOptions struct {
	Limit      int64  // 0 means unlimited
	SortField  string // empty keeps the store's native order
	Descending bool
}

// Collection is a typed view over one collection of a document store.
// Every write touches exactly one document unless the method says otherwise.
type Collection[T any] interface {
	// Find returns the documents matching filter
	Find(ctx context.Context, filter Filter, opts FindOptions) ([]T, error)

	// FindOne returns the first matching document or domain.ErrNotFound
	FindOne(ctx context.Context, filter Filter) (*T, error)

	// InsertOne stores a new document
	InsertOne(ctx context.Context, doc T) error

	// UpdateOne sets the given fields on the first matching document.
	// It returns domain.ErrNotFound when nothing matched.
	UpdateOne(ctx context.Context, filter Filter, set map[string]any) error

	// DeleteOne removes the first matching document or returns domain.ErrNotFound
	DeleteOne(ctx context.Context, filter Filter) error

	// DeleteMany removes every matching document and reports how many were removed
	DeleteMany(ctx context.Context, filter Filter) (int64, error)

	// Count returns the number of matching documents
	Count(ctx context.Context, filter Filter) (int64, error)
}

// DocumentStore owns the connection shared by all collections.
type DocumentStore interface {
	Collections() Collections
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Collections groups the three collections of the security dashboard.
type Collections struct {
	Policies Collection[domain.Policy]
	Devices  Collection[domain.Device]
	Alerts   Collection[domain.Alert]
}
