package session

import (
	"context"
	"sync"
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

type entry struct {
	session   domain.Session
	expiresAt time.Time
}

// MemoryStore is a process-local Store used when Redis is not configured.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	now      func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, ss domain.Session, ttl time.Duration) error {
	e := entry{session: ss}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.sessions[ss.ID] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}
	ss := e.session
	return &ss, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
