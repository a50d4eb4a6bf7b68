package storage

import "sync"

// Surface identifies a logical on-screen element whose message ID is tracked
// so stale copies can be deleted. The active question message is tracked on
// the session itself, not here.
type Surface string

const (
	SurfaceMenu          Surface = "menu"           // category menu
	SurfaceResult        Surface = "result"         // final quiz result
	SurfaceStartAck      Surface = "start_ack"      // response to /start
	SurfaceCategoriesAck Surface = "categories_ack" // response to /categories
)

// MessageRefStore keeps the last sent message ID per user and surface.
// It is pure tidy-up bookkeeping and has no effect on quiz correctness.
type MessageRefStore struct {
	mu   sync.RWMutex
	refs map[int64]map[Surface]int
}

// NewMessageRefStore creates a new MessageRefStore.
func NewMessageRefStore() *MessageRefStore {
	return &MessageRefStore{
		refs: make(map[int64]map[Surface]int),
	}
}

// Get returns the tracked message ID for a surface, if any.
func (s *MessageRefStore) Get(userID int64, surface Surface) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.refs[userID][surface]
	return id, ok
}

// Set records the message ID for a surface, overwriting any previous one.
func (s *MessageRefStore) Set(userID int64, surface Surface, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs[userID] == nil {
		s.refs[userID] = make(map[Surface]int)
	}
	s.refs[userID][surface] = messageID
}

// Clear drops the tracked message ID for a surface.
func (s *MessageRefStore) Clear(userID int64, surface Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.refs[userID], surface)
}
