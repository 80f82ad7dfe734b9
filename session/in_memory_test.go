package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/hupe1980/fivewhys/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.Store = (*InMemoryStore)(nil)

// fakeClock is a manually advanced clock for deterministic expiry tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(capacity int, timeout time.Duration, clock *fakeClock) *InMemoryStore {
	return NewInMemoryStore(func(o *Options) {
		o.Capacity = capacity
		o.IdleTimeout = timeout
		o.Clock = clock.Now
	})
}

func TestPutGetRoundTrip(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(10, time.Minute, clock)

	inq := core.NewInquiry("sess-1", "The website is slow")
	require.NoError(t, store.Put("sess-1", inq))

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "The website is slow", got.Problem)
	assert.Equal(t, 1, got.Step)
}

func TestGetUnknown(t *testing.T) {
	store := newTestStore(10, time.Minute, newFakeClock())

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestGetReturnsClone(t *testing.T) {
	store := newTestStore(10, time.Minute, newFakeClock())
	require.NoError(t, store.Put("sess-1", core.NewInquiry("sess-1", "p")))

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	got.RecordAnswer("mutated externally")
	got.Problem = "changed"

	again, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "p", again.Problem)
	assert.Empty(t, again.Answers)
}

func TestDelete(t *testing.T) {
	store := newTestStore(10, time.Minute, newFakeClock())
	require.NoError(t, store.Put("sess-1", core.NewInquiry("sess-1", "p")))

	assert.True(t, store.Delete("sess-1"))
	assert.False(t, store.Delete("sess-1"))

	_, err := store.Get("sess-1")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestStats(t *testing.T) {
	store := newTestStore(5, time.Minute, newFakeClock())
	require.NoError(t, store.Put("a", core.NewInquiry("a", "p")))
	require.NoError(t, store.Put("b", core.NewInquiry("b", "p")))

	assert.Equal(t, core.Stats{Count: 2, Capacity: 5}, store.Stats())
}

func TestCapacityNeverExceeded(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(3, time.Hour, clock)

	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("sess-%02d", i)
		require.NoError(t, store.Put(id, core.NewInquiry(id, "p")))
		assert.LessOrEqual(t, store.Stats().Count, 3)
		clock.Advance(time.Second)
	}
}

func TestEvictionDropsExpiredFirst(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(2, time.Minute, clock)

	require.NoError(t, store.Put("old", core.NewInquiry("old", "p")))
	clock.Advance(2 * time.Minute) // "old" is now past the idle timeout
	require.NoError(t, store.Put("fresh", core.NewInquiry("fresh", "p")))

	// The store is at capacity; inserting evicts the expired record, the
	// fresh one survives.
	require.NoError(t, store.Put("new", core.NewInquiry("new", "p")))

	_, err := store.Get("old")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = store.Get("fresh")
	assert.NoError(t, err)

	_, err = store.Get("new")
	assert.NoError(t, err)
}

func TestEvictionFallsBackToLeastRecentlyTouched(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(3, time.Hour, clock)

	require.NoError(t, store.Put("a", core.NewInquiry("a", "p")))
	clock.Advance(time.Second)
	require.NoError(t, store.Put("b", core.NewInquiry("b", "p")))
	clock.Advance(time.Second)
	require.NoError(t, store.Put("c", core.NewInquiry("c", "p")))
	clock.Advance(time.Second)

	// Nothing has expired: the least-recently-touched record goes.
	require.NoError(t, store.Put("d", core.NewInquiry("d", "p")))

	_, err := store.Get("a")
	assert.ErrorIs(t, err, core.ErrNotFound)

	for _, id := range []string{"b", "c", "d"} {
		_, err := store.Get(id)
		assert.NoError(t, err, "expected %s to survive", id)
	}
}

func TestEvictionTieBreaksByID(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(3, time.Hour, clock)

	// All three records share an identical LastTouched.
	require.NoError(t, store.Put("b", core.NewInquiry("b", "p")))
	require.NoError(t, store.Put("c", core.NewInquiry("c", "p")))
	require.NoError(t, store.Put("a", core.NewInquiry("a", "p")))

	require.NoError(t, store.Put("d", core.NewInquiry("d", "p")))

	// Lexicographically smallest id loses the tie.
	_, err := store.Get("a")
	assert.ErrorIs(t, err, core.ErrNotFound)

	for _, id := range []string{"b", "c", "d"} {
		_, err := store.Get(id)
		assert.NoError(t, err, "expected %s to survive", id)
	}
}

func TestLazyExpiry_ExpiredRecordStillReadableBeforeEviction(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(10, time.Minute, clock)

	require.NoError(t, store.Put("sess-1", core.NewInquiry("sess-1", "p")))
	clock.Advance(10 * time.Minute)

	// Idle time exceeds the timeout but no insert under pressure has run,
	// so the record is still there and the read resets its idle clock.
	got, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "p", got.Problem)
}

func TestGetExtendsLifetime(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(2, time.Minute, clock)

	require.NoError(t, store.Put("kept", core.NewInquiry("kept", "p")))
	require.NoError(t, store.Put("idle", core.NewInquiry("idle", "p")))

	clock.Advance(50 * time.Second)
	_, err := store.Get("kept") // sliding expiry: read refreshes LastTouched
	require.NoError(t, err)

	clock.Advance(30 * time.Second) // "idle" is now 80s idle, "kept" only 30s

	require.NoError(t, store.Put("new", core.NewInquiry("new", "p")))

	_, err = store.Get("idle")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = store.Get("kept")
	assert.NoError(t, err)
}

func TestReplacingExistingKeyDoesNotEvict(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(2, time.Hour, clock)

	require.NoError(t, store.Put("a", core.NewInquiry("a", "p")))
	require.NoError(t, store.Put("b", core.NewInquiry("b", "p")))

	// Overwriting a live key is a replace, not growth.
	updated := core.NewInquiry("a", "p")
	updated.Step = 2
	require.NoError(t, store.Put("a", updated))

	assert.Equal(t, 2, store.Stats().Count)

	got, err := store.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "p", got.Problem)
}
