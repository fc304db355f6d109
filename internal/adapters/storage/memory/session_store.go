package memory

import (
	"context"
	"sync"
	"time"

	"github.com/PabloGalante/longevity-agent/internal/domain"
	"github.com/PabloGalante/longevity-agent/internal/observability"
)

// SessionStore is an in-memory implementation of domain.SessionStore.
// It is NOT persistent: sessions live only for the process lifetime and are
// evicted once idle longer than the configured timeout. An evicted id is
// never revived; a later lookup with the same id gets a fresh empty session.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[domain.SessionID]*domain.Session
	timeout  time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store evicting sessions idle longer than timeout.
func NewSessionStore(timeout time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionID]*domain.Session),
		timeout:  timeout,
		now:      time.Now,
	}
}

// GetOrCreate returns the live session for id, creating an empty one when the
// id is unknown. Expired sessions are swept first, so a stale id behaves
// exactly like an unseen one.
func (s *SessionStore) GetOrCreate(id domain.SessionID) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	if sess, ok := s.sessions[id]; ok {
		sess.LastAccessed = s.now()
		return sess, nil
	}

	now := s.now()
	sess := &domain.Session{
		ID:           id,
		CreatedAt:    now,
		LastAccessed: now,
	}
	s.sessions[id] = sess
	return sess, nil
}

// Put replaces the stored state for id and refreshes last-accessed.
func (s *SessionStore) Put(id domain.SessionID, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.LastAccessed = s.now()
	s.sessions[id] = session
	return nil
}

// Sweep removes all sessions whose idle time exceeds the timeout.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *SessionStore) sweepLocked() int {
	now := s.now()
	evicted := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastAccessed) > s.timeout {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// ActiveCount reports how many sessions are currently held.
func (s *SessionStore) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// StartSweeper runs a periodic background sweep until ctx is cancelled.
// The opportunistic sweep in GetOrCreate already keeps lookups correct; this
// only bounds the memory held by sessions nobody touches again.
func (s *SessionStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					observability.Logger().Info("swept expired sessions", "evicted", n)
				}
			}
		}
	}()
}
