package adapter

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"fmt"
	"sync"
)

// MemoryStore is a process-local document store.
// It backs development runs (STORE_DRIVER=memory) and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollectionData
}

type memoryCollectionData struct {
	order []string // insertion order
	docs  map[string]*jsonDoc
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memoryCollectionData),
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// data must be called with the lock held
func (s *MemoryStore) data(name string) *memoryCollectionData {
	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollectionData{docs: make(map[string]*jsonDoc)}
		s.collections[name] = c
	}
	return c
}

// peek is data for read paths; it never creates the collection
func (s *MemoryStore) peek(name string) *memoryCollectionData {
	if c, ok := s.collections[name]; ok {
		return c
	}
	return &memoryCollectionData{docs: map[string]*jsonDoc{}}
}

// ordered must be called with the lock held
func (c *memoryCollectionData) ordered() []*jsonDoc {
	docs := make([]*jsonDoc, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, c.docs[id])
	}
	return docs
}

func (c *memoryCollectionData) remove(id string) {
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

type memoryCollection[T any] struct {
	store *MemoryStore
	name  string
}

// NewMemoryCollection returns a typed view over the named collection.
func NewMemoryCollection[T any](store *MemoryStore, name string) port.Collection[T] {
	return &memoryCollection[T]{store: store, name: name}
}

func (c *memoryCollection[T]) Find(ctx context.Context, filter port.Filter, opts port.FindOptions) ([]T, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	docs := selectDocs(c.store.peek(c.name).ordered(), filter, opts)
	return unmarshalDocs[T](docs)
}

func (c *memoryCollection[T]) FindOne(ctx context.Context, filter port.Filter) (*T, error) {
	docs, err := c.Find(ctx, filter, port.FindOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &docs[0], nil
}

func (c *memoryCollection[T]) InsertOne(ctx context.Context, doc T) error {
	d, err := encodeDoc(doc)
	if err != nil {
		return err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	data := c.store.data(c.name)
	if _, exists := data.docs[d.id]; exists {
		return fmt.Errorf("document %s already exists in %s", d.id, c.name)
	}
	data.docs[d.id] = d
	data.order = append(data.order, d.id)
	return nil
}

func (c *memoryCollection[T]) UpdateOne(ctx context.Context, filter port.Filter, set map[string]any) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	data := c.store.data(c.name)
	matched := selectDocs(data.ordered(), filter, port.FindOptions{Limit: 1})
	if len(matched) == 0 {
		return domain.ErrNotFound
	}

	updated, err := matched[0].withChanges(set)
	if err != nil {
		return err
	}
	data.docs[updated.id] = updated
	return nil
}

func (c *memoryCollection[T]) DeleteOne(ctx context.Context, filter port.Filter) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	data := c.store.data(c.name)
	matched := selectDocs(data.ordered(), filter, port.FindOptions{Limit: 1})
	if len(matched) == 0 {
		return domain.ErrNotFound
	}
	data.remove(matched[0].id)
	return nil
}

func (c *memoryCollection[T]) DeleteMany(ctx context.Context, filter port.Filter) (int64, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	data := c.store.data(c.name)
	matched := selectDocs(data.ordered(), filter, port.FindOptions{})
	for _, d := range matched {
		data.remove(d.id)
	}
	return int64(len(matched)), nil
}

func (c *memoryCollection[T]) Count(ctx context.Context, filter port.Filter) (int64, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	return int64(len(selectDocs(c.store.peek(c.name).ordered(), filter, port.FindOptions{}))), nil
}

// Collections returns the dashboard collections held by this store.
func (s *MemoryStore) Collections() port.Collections {
	return port.Collections{
		Policies: NewMemoryCollection[domain.Policy](s, port.PoliciesCollection),
		Devices:  NewMemoryCollection[domain.Device](s, port.DevicesCollection),
		Alerts:   NewMemoryCollection[domain.Alert](s, port.AlertsCollection),
	}
}
