package storage

import (
	"sync"

	"github.com/aliskhannn/football-quiz-bot/internal/domain/entities"
)

// ResultStore keeps the last recorded score per user and category. Entries
// outlive quiz sessions and are only overwritten by a later finished quiz.
type ResultStore struct {
	mu      sync.RWMutex
	results map[int64]map[string]entities.CategoryResult
}

// NewResultStore creates a new ResultStore.
func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[int64]map[string]entities.CategoryResult),
	}
}

// Get returns a copy of the user's per-category results.
func (s *ResultStore) Get(userID int64) map[string]entities.CategoryResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]entities.CategoryResult, len(s.results[userID]))
	for category, res := range s.results[userID] {
		out[category] = res
	}
	return out
}

// Set records the user's result for a category, overwriting any previous one.
func (s *ResultStore) Set(userID int64, category string, res entities.CategoryResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.results[userID] == nil {
		s.results[userID] = make(map[string]entities.CategoryResult)
	}
	s.results[userID][category] = res
}
