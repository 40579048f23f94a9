package session

import (
	"sync"
)

// MemoryStore keeps pending questions in a process-local map. Sessions do
// not survive a restart; it exists for tests and local development without
// a database.
type MemoryStore struct {
	mu      sync.RWMutex
	pending map[int64]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pending: make(map[int64]string)}
}

func (s *MemoryStore) HasPending(userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pending[userID]
	return ok, nil
}

func (s *MemoryStore) GetPending(userID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	question, ok := s.pending[userID]
	if !ok {
		return "", ErrNoSession
	}
	return question, nil
}

func (s *MemoryStore) SetPending(userID int64, question string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = question
	return nil
}

func (s *MemoryStore) Clear(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, userID)
	return nil
}
