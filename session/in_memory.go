package session

import (
	"sort"
	"sync"
	"time"

	"github.com/hupe1980/fivewhys/core"
)

const (
	// DefaultCapacity bounds the number of live inquiries held at once.
	DefaultCapacity = 100
	// DefaultIdleTimeout is how long an untouched inquiry stays eligible
	// for retrieval before eviction may reclaim it.
	DefaultIdleTimeout = 30 * time.Minute
)

// Options configures an InMemoryStore instance.
type Options struct {
	// Capacity is the maximum inquiry population. Inserting a new id at or
	// above this bound triggers eviction first.
	Capacity int

	// IdleTimeout is the sliding idle duration after which a record becomes
	// an eviction candidate. Any read or write resets the idle clock.
	IdleTimeout time.Duration

	// Clock supplies the current time; overridable in tests.
	Clock func() time.Time
}

// InMemoryStore is a volatile core.Store implementation holding inquiries in
// a process local map. It is safe for concurrent access and enforces a
// capacity bound with sliding idle expiry. Each returned inquiry is cloned to
// prevent external mutation of internal state.
//
// Expiry is lazy: no background timer runs. Idle records are reclaimed only
// when an insert happens under capacity pressure, so a silently expired
// record remains retrievable via Get until eviction actually runs. This is
// intentional cleanup-on-write, not a bug; Get reads additionally extend the
// record's lifetime.
type InMemoryStore struct {
	mu          sync.Mutex
	inquiries   map[string]*core.Inquiry
	capacity    int
	idleTimeout time.Duration
	now         func() time.Time
}

// NewInMemoryStore constructs an empty in-memory inquiry store with optional
// overrides for capacity, idle timeout and clock.
func NewInMemoryStore(optFns ...func(o *Options)) *InMemoryStore {
	opts := Options{
		Capacity:    DefaultCapacity,
		IdleTimeout: DefaultIdleTimeout,
		Clock:       time.Now,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Capacity < 1 {
		opts.Capacity = DefaultCapacity
	}

	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}

	return &InMemoryStore{
		inquiries:   make(map[string]*core.Inquiry),
		capacity:    opts.Capacity,
		idleTimeout: opts.IdleTimeout,
		now:         opts.Clock,
	}
}

// Put stores or replaces the inquiry under id, stamping LastTouched. When
// the insert would grow the population at or above capacity, eviction runs
// first so the insert always fits.
func (s *InMemoryStore) Put(id string, inq *core.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.inquiries[id]; !exists && len(s.inquiries) >= s.capacity {
		s.evictLocked()
	}

	clone := inq.Clone()
	clone.LastTouched = s.now()
	s.inquiries[id] = clone

	return nil
}

// Get returns a clone of the stored inquiry, refreshing its LastTouched so
// reads extend lifetime. Unknown, evicted and expired ids all surface as
// core.ErrNotFound.
func (s *InMemoryStore) Get(id string) (*core.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inq, ok := s.inquiries[id]
	if !ok {
		return nil, core.ErrNotFound
	}

	inq.LastTouched = s.now()

	return inq.Clone(), nil
}

// Delete removes an inquiry if present and reports whether it was.
func (s *InMemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.inquiries[id]
	delete(s.inquiries, id)

	return ok
}

// Stats reports the current population and the configured capacity.
func (s *InMemoryStore) Stats() core.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return core.Stats{Count: len(s.inquiries), Capacity: s.capacity}
}

// evictLocked makes room for one pending insert; caller must hold the lock.
// Pass one drops every record idle longer than the timeout. If the store is
// still at or above capacity, pass two drops the least-recently-touched
// records down to capacity-1, breaking LastTouched ties by lexicographic id
// so eviction order is reproducible.
func (s *InMemoryStore) evictLocked() {
	now := s.now()

	for id, inq := range s.inquiries {
		if now.Sub(inq.LastTouched) > s.idleTimeout {
			delete(s.inquiries, id)
		}
	}

	if len(s.inquiries) < s.capacity {
		return
	}

	ids := make([]string, 0, len(s.inquiries))
	for id := range s.inquiries {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(a, b int) bool {
		ta, tb := s.inquiries[ids[a]].LastTouched, s.inquiries[ids[b]].LastTouched
		if ta.Equal(tb) {
			return ids[a] < ids[b]
		}
		return ta.Before(tb)
	})

	for _, id := range ids {
		if len(s.inquiries) < s.capacity {
			break
		}
		delete(s.inquiries, id)
	}
}
