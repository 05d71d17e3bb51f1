package callsession

import (
	"context"
	"sync"
	"time"

	"service/internal/entities"
)

type entry struct {
	session    entities.CallSession
	lastActive time.Time
}

// Store keeps dialog state in process memory, keyed by call id. Calls are
// short-lived and sessions are tiny, so there is no reason to round-trip
// them through the database; abandoned calls are reclaimed by EvictIdle.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock is for tests that need to control idle eviction.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		entries: make(map[string]*entry),
		now:     now,
	}
}

// Get returns the session for the call, or an empty session when none exists
// yet. Reading an existing session counts as activity.
func (s *Store) Get(_ context.Context, callID string) entities.CallSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[callID]
	if !ok {
		return entities.CallSession{}
	}
	e.lastActive = s.now()
	return e.session
}

// Update applies fn to the stored session (an empty one for unknown calls)
// and keeps the result, all under the store lock. Webhooks for one call can
// arrive concurrently, so the read-modify-write has to be one critical
// section or a slow turn overwrites a field a faster one just collected.
func (s *Store) Update(_ context.Context, callID string, fn func(entities.CallSession) entities.CallSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[callID]
	if !ok {
		e = &entry{}
		s.entries[callID] = e
	}
	e.session = fn(e.session)
	e.lastActive = s.now()
}

func (s *Store) Delete(_ context.Context, callID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, callID)
}

// EvictIdle drops sessions with no activity for at least idleFor and returns
// how many were dropped. Covers calls that hang up mid-dialog and never
// reach a terminal turn.
func (s *Store) EvictIdle(idleFor time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.now().Add(-idleFor)
	evicted := 0
	for callID, e := range s.entries {
		if e.lastActive.Before(deadline) || e.lastActive.Equal(deadline) {
			delete(s.entries, callID)
			evicted++
		}
	}
	return evicted
}

// Len reports how many sessions are currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
