package storage

import (
	"context"
	"sync"
	"time"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
)

type memoryEntry struct {
	session *internal.Session
	touched time.Time
}

// MemorySessionStore keeps sessions in process memory. Values are cloned on
// the way in and out so callers never share slices with the store. Sessions
// expire ttl after their last write; a ttl of zero keeps them forever.
type MemorySessionStore struct {
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemorySessionStore) expired(e memoryEntry) bool {
	return m.ttl > 0 && m.now().Sub(e.touched) >= m.ttl
}

// live must be called with mu held.
func (m *MemorySessionStore) live(id string) (memoryEntry, bool) {
	e, ok := m.sessions[id]
	if !ok || m.expired(e) {
		return memoryEntry{}, false
	}
	return e, true
}

func (m *MemorySessionStore) Create(ctx context.Context, s *internal.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.sessions {
		if m.expired(e) {
			delete(m.sessions, id)
		}
	}
	m.sessions[s.ID] = memoryEntry{session: s.Clone(), touched: m.now()}
	return nil
}

func (m *MemorySessionStore) Get(ctx context.Context, id string) (*internal.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.live(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e.session.Clone(), nil
}

func (m *MemorySessionStore) Update(ctx context.Context, id string, fn UpdateFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(id)
	if !ok {
		delete(m.sessions, id)
		return ErrSessionNotFound
	}
	s := e.session.Clone()
	if err := fn(s); err != nil {
		return err
	}
	s.ID = id
	m.sessions[id] = memoryEntry{session: s.Clone(), touched: m.now()}
	return nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.live(id)
	delete(m.sessions, id)
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

func (m *MemorySessionStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

var _ SessionStore = (*MemorySessionStore)(nil)
