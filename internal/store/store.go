package store

import (
	"context"
	"sync"

	"reptrack/reptrack/internal/persistence"

	"github.com/sirupsen/logrus"
)

// Observer receives a snapshot of the collection after every in-memory change.
type Observer[T persistence.Entity] func(items []T)

// Store is a reactive in-memory container for one entity collection, mirrored
// to durable storage through a persistence adapter.
//
// Mutations are optimistic: memory is updated and observers are notified
// synchronously, then the whole collection is persisted from a goroutine.
// A persist failure is logged, never rolled back; memory is authoritative.
//
// Two racing mutations persist last-completed-wins at the storage layer, not
// last-issued-wins. Accepted risk; there is no version token.
type Store[T persistence.Entity] struct {
	entity    string
	mu        sync.Mutex
	items     []T
	observers []Observer[T]
	adapter   *persistence.Adapter[T]
	inflight  sync.WaitGroup
}

// New creates an empty store. Until Hydrate is called, reads return an empty
// collection, which is a valid transient state and not an error.
func New[T persistence.Entity](entity string, adapter *persistence.Adapter[T]) *Store[T] {
	return &Store[T]{
		entity:  entity,
		items:   []T{},
		adapter: adapter,
	}
}

// Subscribe registers an observer notified synchronously after every
// in-memory change (including hydration).
func (s *Store[T]) Subscribe(observer Observer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Items returns a snapshot of the current in-memory collection. Never
// triggers I/O.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the element with the given id, if present.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add prepends the item, so the in-memory collection is always ordered
// most-recent-first.
func (s *Store[T]) Add(item T) {
	s.mu.Lock()
	s.items = append([]T{item}, s.items...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	s.persistAsync(snapshot)
}

// Update replaces the element whose id matches, preserving its position.
// With no match the collection is unchanged but still persisted.
func (s *Store[T]) Update(item T) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == item.EntityID() {
			s.items[i] = item
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	s.persistAsync(snapshot)
}

// Delete removes the element with the given id.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	s.persistAsync(snapshot)
}

// Hydrate replaces the in-memory collection wholesale from durable storage.
// Typically called once at startup. Loading degrades to empty on any read
// failure inside the adapter, so a broken slot leaves a usable (empty) store.
func (s *Store[T]) Hydrate(ctx context.Context) {
	loaded := s.adapter.Load(ctx)

	s.mu.Lock()
	s.items = loaded
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// Flush blocks until persist operations already in flight have completed.
// Intended for shutdown and tests; normal operation never waits on it.
func (s *Store[T]) Flush() {
	s.inflight.Wait()
}

func (s *Store[T]) snapshotLocked() []T {
	snapshot := make([]T, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *Store[T]) notify(snapshot []T) {
	s.mu.Lock()
	observers := make([]Observer[T], len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, observer := range observers {
		observer(snapshot)
	}
}

// persistAsync mirrors the snapshot to durable storage without blocking the
// caller. Uses a background context: an in-flight persist is never cancelled
// by the operation that triggered it going away.
func (s *Store[T]) persistAsync(snapshot []T) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if err := s.adapter.Persist(context.Background(), snapshot); err != nil {
			logrus.Errorf("failed to persist %s: %s", s.entity, err)
		}
	}()
}
