package session

import (
	"sync"

	"github.com/censodigital/censo_registro_bot/internal/registration"
)

// Store owns every in-progress registration, keyed by telegram user id.
// Sessions live until completed, cancelled, or replaced by a fresh
// /registro; there is no expiry.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*registration.Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*registration.Session),
	}
}

func (s *Store) Get(userID int64) *registration.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions[userID]
}

func (s *Store) Put(sess *registration.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.UserID] = sess
}

func (s *Store) Remove(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}
