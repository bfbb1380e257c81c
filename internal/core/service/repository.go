package service

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
)

// ListLimit caps every list query.
const ListLimit = 1000

// Repository maps CRUD verbs for one record type onto a store collection.
// Updates only ever touch the fields in its mutation set.
type Repository[T any] struct {
	coll     port.Collection[T]
	idField  string
	mutable  map[string]struct{}
	listOpts port.FindOptions
}

func NewRepository[T any](coll port.Collection[T], idField string, mutable []string, listOpts port.FindOptions) *Repository[T] {
	set := make(map[string]struct{}, len(mutable))
	for _, f := range mutable {
		set[f] = struct{}{}
	}
	listOpts.Limit = ListLimit
	return &Repository[T]{
		coll:     coll,
		idField:  idField,
		mutable:  set,
		listOpts: listOpts,
	}
}

func (r *Repository[T]) byID(id string) port.Filter {
	return port.Filter{r.idField: id}
}

// List returns up to ListLimit records in the repository's list order
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	records, err := r.coll.Find(ctx, nil, r.listOpts)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (r *Repository[T]) Insert(ctx context.Context, record T) error {
	return r.coll.InsertOne(ctx, record)
}

// Get returns the record or domain.ErrNotFound
func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	return r.coll.FindOne(ctx, r.byID(id))
}

// Patch sets the allowed fields of set on the record without reading it back
func (r *Repository[T]) Patch(ctx context.Context, id string, set map[string]any) error {
	allowed := make(map[string]any, len(set))
	for k, v := range set {
		if _, ok := r.mutable[k]; ok {
			allowed[k] = v
		}
	}
	return r.coll.UpdateOne(ctx, r.byID(id), allowed)
}

// Update patches the record and returns its stored state
func (r *Repository[T]) Update(ctx context.Context, id string, set map[string]any) (*T, error) {
	if err := r.Patch(ctx, id, set); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes the record or returns domain.ErrNotFound
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	return r.coll.DeleteOne(ctx, r.byID(id))
}

func (r *Repository[T]) Count(ctx context.Context, filter port.Filter) (int64, error) {
	return r.coll.Count(ctx, filter)
}

// Clear removes every record in the collection
func (r *Repository[T]) Clear(ctx context.Context) (int64, error) {
	return r.coll.DeleteMany(ctx, port.Filter{})
}

// Repositories bundles the three dashboard repositories.
type Repositories struct {
	Policies *Repository[domain.Policy]
	Devices  *Repository[domain.Device]
	Alerts   *Repository[domain.Alert]
}

var (
	policyMutable = []string{"name", "description", "category", "action", "domains", "keywords", "enabled", "priority", "updated_at"}
	deviceMutable = []string{"name", "device_type", "ip_address", "location", "description", "status", "position", "connections"}
	alertMutable  = []string{"resolved", "resolved_at"}
)

func NewRepositories(c port.Collections) *Repositories {
	return &Repositories{
		Policies: NewRepository(c.Policies, "id", policyMutable, port.FindOptions{}),
		Devices:  NewRepository(c.Devices, "id", deviceMutable, port.FindOptions{}),
		Alerts:   NewRepository(c.Alerts, "id", alertMutable, port.FindOptions{SortField: "created_at", Descending: true}),
	}
}
