// Package store provides the generic client-side entity store: one ordered
// collection per entity type, a loading flag, and the last operation error.
// All mutation goes through the Apply and Begin/End methods; the collection
// holds at most one record per id at any time.
package store

import "sync"

// State is a point-in-time view of a store: the collection, whether an
// operation is in flight, and the error of the last failed operation.
type State[T any] struct {
	Collection []T
	Loading    bool
	Err        error
}

// MergeFunc combines an existing record with an update patch and returns the
// merged record. The default merge discards the existing record and keeps the
// patch; Record stores install a shallow field merge instead.
type MergeFunc[T any] func(existing, patch T) T

// Store holds the client-side collection for one entity type. A Store is safe
// for concurrent use; reads return copies, never internal slices.
type Store[T any] struct {
	mu         sync.RWMutex
	id         func(T) string
	merge      MergeFunc[T]
	collection []T
	loading    bool
	err        error

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

// Option configures a Store at construction time.
type Option[T any] func(*Store[T])

// WithMerge installs a custom merge function for ApplyUpdate.
func WithMerge[T any](merge MergeFunc[T]) Option[T] {
	return func(s *Store[T]) { s.merge = merge }
}

// New creates an empty Store. id extracts the unique identifier of a record;
// it must be stable for the record's lifetime.
func New[T any](id func(T) string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		id:    id,
		merge: func(_, patch T) T { return patch },
		subs:  make(map[int]chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin marks an operation as in flight.
func (s *Store[T]) Begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.notify()
}

// End marks the in-flight operation as finished. A non-nil err records the
// failure; nil clears a previous failure.
func (s *Store[T]) End(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
	s.notify()
}

// ApplyFetch replaces the entire collection with records and clears the error.
// An empty records slice is valid and leaves an empty collection. Should the
// backend ever return duplicate ids in one listing, later occurrences
// overwrite earlier ones in place so the uniqueness invariant holds.
func (s *Store[T]) ApplyFetch(records []T) {
	s.mu.Lock()
	fresh := make([]T, 0, len(records))
	index := make(map[string]int, len(records))
	for _, rec := range records {
		id := s.id(rec)
		if pos, seen := index[id]; seen && id != "" {
			fresh[pos] = rec
			continue
		}
		index[id] = len(fresh)
		fresh = append(fresh, rec)
	}
	s.collection = fresh
	s.err = nil
	s.mu.Unlock()
	s.notify()
}

// ApplyCreate appends record to the collection. If a record with the same id
// already exists (a retried create can legally return the same id), the
// existing entry is overwritten in place rather than duplicated.
func (s *Store[T]) ApplyCreate(record T) {
	s.mu.Lock()
	id := s.id(record)
	if pos, ok := s.find(id); ok {
		s.collection[pos] = record
	} else {
		s.collection = append(s.collection, record)
	}
	s.mu.Unlock()
	s.notify()
}

// ApplyUpdate merges patch onto the record with the given id, keeping its
// position. When no record with that id exists, the update lost the race
// against a delete and the call is a no-op, not an error.
func (s *Store[T]) ApplyUpdate(id string, patch T) {
	s.mu.Lock()
	pos, ok := s.find(id)
	if ok {
		s.collection[pos] = s.merge(s.collection[pos], patch)
	}
	s.mu.Unlock()
	if ok {
		s.notify()
	}
}

// ApplyDelete removes the record with the given id. Absent id is a no-op.
func (s *Store[T]) ApplyDelete(id string) {
	s.mu.Lock()
	pos, ok := s.find(id)
	if ok {
		s.collection = append(s.collection[:pos], s.collection[pos+1:]...)
	}
	s.mu.Unlock()
	if ok {
		s.notify()
	}
}

// find returns the position of the record with the given id. Caller must hold
// at least a read lock.
func (s *Store[T]) find(id string) (int, bool) {
	for i, rec := range s.collection {
		if s.id(rec) == id {
			return i, true
		}
	}
	return 0, false
}

// Get returns the record with the given id, if present.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos, ok := s.find(id); ok {
		return s.collection[pos], true
	}
	var zero T
	return zero, false
}

// Len returns the number of records in the collection.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collection)
}

// Snapshot returns a copy of the collection in its current order.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]T, len(s.collection))
	copy(cp, s.collection)
	return cp
}

// State returns the collection copy together with the loading and error
// flags, read atomically.
func (s *Store[T]) State() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]T, len(s.collection))
	copy(cp, s.collection)
	return State[T]{Collection: cp, Loading: s.loading, Err: s.err}
}

// Subscribe returns a channel that receives a signal after every state
// change, and a cancel function that releases the subscription. Signals are
// coalesced: a slow reader sees at least one signal for any burst of changes.
func (s *Store[T]) Subscribe() (<-chan struct{}, func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
	return ch, cancel
}

// notify signals all subscribers without blocking.
func (s *Store[T]) notify() {
	s.subMu.Lock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	s.subMu.Unlock()
}
