package tokenstore

import "sync"

// InMemoryStore keeps the token for the lifetime of the process
type InMemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty in-memory token store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set
}

func (s *InMemoryStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
}
