package session_cleanup

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Store interface {
	EvictIdle(idleFor time.Duration) int
}

// SessionCleanup periodically drops call sessions abandoned mid-dialog, so
// callers who hang up before finishing a quote do not leak state.
type SessionCleanup struct {
	log      logger.Logger
	store    Store
	idleTTL  time.Duration
	interval time.Duration
}

func NewSessionCleanup(log logger.Logger, store Store, idleTTL, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		log:      log,
		store:    store,
		idleTTL:  idleTTL,
		interval: interval,
	}
}

func (s *SessionCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SessionCleanup) Do(_ context.Context) error {
	evicted := s.store.EvictIdle(s.idleTTL)

	if evicted > 0 {
		s.log.With(
			logger.NewField("evicted_sessions", evicted),
		).Info("call session cleanup")
	}

	return nil
}

func (s *SessionCleanup) Info() string {
	return "call session cleanup"
}
