package storage

import (
	"sync"

	"github.com/aliskhannn/football-quiz-bot/internal/domain/entities"
)

// SessionStore provides in-memory storage for active quiz sessions by user ID.
// At most one session exists per user.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Get returns the user's active session, or nil if there is none.
func (s *SessionStore) Get(userID int64) *entities.QuizSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// Set replaces the user's active session.
func (s *SessionStore) Set(userID int64, session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = session
}

// Clear removes the user's active session. Past results are not touched.
func (s *SessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
