package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ghiac/suitenav/model"
)

// MemoryStore is an in-memory implementation of model.HeaderStateStore
type MemoryStore struct {
	states map[string]*model.HeaderState
	mu     sync.RWMutex
}

// NewMemoryStore creates a new in-memory header state store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[string]*model.HeaderState),
	}
}

// Get retrieves a copy of the state of a session
func (s *MemoryStore) Get(sessionID string) (*model.HeaderState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrStateNotFound, sessionID)
	}

	cp := *state
	return &cp, nil
}

// Put stores or updates a state
func (s *MemoryStore) Put(state *model.HeaderState) error {
	if state == nil {
		return fmt.Errorf("header state cannot be nil")
	}
	if state.SessionID == "" {
		return fmt.Errorf("header state has no session id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state.UpdatedAt = time.Now()
	cp := *state
	s.states[state.SessionID] = &cp

	return nil
}

// Delete removes a state
func (s *MemoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, sessionID)
	return nil
}

// List returns all states, most recently updated first
func (s *MemoryStore) List() ([]*model.HeaderState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]*model.HeaderState, 0, len(s.states))
	for _, state := range s.states {
		cp := *state
		states = append(states, &cp)
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].UpdatedAt.After(states[j].UpdatedAt)
	})

	return states, nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}
