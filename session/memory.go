package session

import (
	"context"
	"sync"
	"time"

	"sitelog/models"
)

// MemoryStore is the single-instance fallback used when Redis is disabled,
// and the store of choice in tests. Sessions vanish on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	teams    []models.Team
	hasTeams bool
}

type memoryEntry struct {
	session Session
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expires) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, nil
	}
	s := entry.session
	return &s, nil
}

func (m *MemoryStore) Put(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = memoryEntry{session: *s, expires: time.Now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) PutTeams(teams []models.Team) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams = append([]models.Team(nil), teams...)
	m.hasTeams = true
}

func (m *MemoryStore) CachedTeams() ([]models.Team, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.hasTeams {
		return nil, false
	}
	return append([]models.Team(nil), m.teams...), true
}
