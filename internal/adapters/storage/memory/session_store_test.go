package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/longevity-agent/internal/domain"
)

// fakeClock lets tests move time forward explicitly.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(timeout time.Duration) (*SessionStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s := NewSessionStore(timeout)
	s.now = clock.Now
	return s, clock
}

func TestGetOrCreateFreshSession(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	sess, err := s.GetOrCreate("unseen")
	require.NoError(t, err)

	assert.Equal(t, domain.SessionID("unseen"), sess.ID)
	assert.Empty(t, sess.Messages)
	assert.Empty(t, sess.IdentifiedGoals)
	assert.Empty(t, sess.Recommendations)
	assert.True(t, sess.CreatedAt.Equal(sess.LastAccessed))
}

func TestGetOrCreateRefreshesLastAccessed(t *testing.T) {
	s, clock := newTestStore(time.Hour)

	first, err := s.GetOrCreate("s1")
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)

	again, err := s.GetOrCreate("s1")
	require.NoError(t, err)

	assert.Same(t, first, again)
	assert.True(t, again.LastAccessed.After(again.CreatedAt))
}

func TestSweepBoundary(t *testing.T) {
	timeout := time.Hour
	s, clock := newTestStore(timeout)

	_, err := s.GetOrCreate("idle")
	require.NoError(t, err)

	// One second inside the timeout: retained.
	clock.Advance(timeout - time.Second)
	assert.Equal(t, 0, s.Sweep())
	assert.Equal(t, 1, s.ActiveCount())

	// Two more seconds puts it one past the timeout: evicted.
	clock.Advance(2 * time.Second)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 0, s.ActiveCount())
}

func TestEvictedSessionIsNotRevived(t *testing.T) {
	s, clock := newTestStore(time.Hour)

	sess, err := s.GetOrCreate("s1")
	require.NoError(t, err)
	sess.AppendMessage(&domain.Message{Role: domain.RoleUser, Content: "hello"})
	require.NoError(t, s.Put("s1", sess))

	clock.Advance(2 * time.Hour)

	// The same id now yields a fresh session with empty history; the sweep
	// happens inside GetOrCreate, no explicit Sweep call needed.
	fresh, err := s.GetOrCreate("s1")
	require.NoError(t, err)
	assert.Empty(t, fresh.Messages)
	assert.NotSame(t, sess, fresh)
}

func TestPutRefreshesLastAccessed(t *testing.T) {
	s, clock := newTestStore(time.Hour)

	sess, err := s.GetOrCreate("s1")
	require.NoError(t, err)
	created := sess.LastAccessed

	clock.Advance(time.Minute)
	require.NoError(t, s.Put("s1", sess))

	assert.True(t, sess.LastAccessed.After(created))
}

func TestConcurrentGetOrCreateDistinctIDs(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := domain.SessionID(rune('a' + n%10))
			sess, err := s.GetOrCreate(id)
			assert.NoError(t, err)
			assert.NotNil(t, sess)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, s.ActiveCount())
}
