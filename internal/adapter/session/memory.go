// Package session provides the wizard session stores: an in-process map for
// single-instance deployments and a Redis store for multi-process ones.
package session

import (
	"context"
	"sync"

	"taskcheck/internal/core/domain"
	"taskcheck/internal/core/ports"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]domain.WizardSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]domain.WizardSession)}
}

var _ ports.SessionStore = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, userID int64) (domain.WizardSession, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	return session, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, userID int64, session domain.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = session
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
