package discovery

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planz/planz/pkg/clock"
	"github.com/planz/planz/pkg/domain"
)

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Sessions tracks the controllers of open browsing screens. A session that
// is idle for longer than idle is dropped by Sweep.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*session
	clock    clock.Clock
	idle     time.Duration
}

func NewSessions(clk clock.Clock, idle time.Duration) *Sessions {
	return &Sessions{
		sessions: make(map[string]*session),
		clock:    clk,
		idle:     idle,
	}
}

func (s *Sessions) Open() (string, *Controller) {
	id := uuid.NewString()
	ctrl := NewController()

	s.mu.Lock()
	s.sessions[id] = &session{ctrl: ctrl, lastSeen: s.clock.Now()}
	s.mu.Unlock()

	return id, ctrl
}

// Get returns the controller for id and marks the session as seen.
func (s *Sessions) Get(id string) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess.lastSeen = s.clock.Now()
	return sess.ctrl, nil
}

func (s *Sessions) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Sweep removes idle sessions and returns how many were dropped.
func (s *Sessions) Sweep() int {
	if s.idle <= 0 {
		return 0
	}
	cutoff := s.clock.Now().Add(-s.idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
