package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"lumenquest/internal/models"
)

type memoryRecord struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore is the single-process fallback used when no redis server is
// configured. Records are serialised the same way as in redis, so a stored
// identity never shares memory with the caller.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]memoryRecord
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]memoryRecord),
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, session models.Session) error {
	if !session.ExpiresAt.After(s.now()) {
		return fmt.Errorf("session %s already expired", session.ID)
	}
	payload, err := json.Marshal(session.Identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[Key(session.ID)] = memoryRecord{payload: payload, expiresAt: session.ExpiresAt}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Session, error) {
	key := Key(id)

	s.mu.Lock()
	record, ok := s.records[key]
	if ok && !record.expiresAt.After(s.now()) {
		delete(s.records, key)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	var identity models.Identity
	if err := json.Unmarshal(record.payload, &identity); err != nil {
		return models.Session{}, fmt.Errorf("decode identity: %w", err)
	}
	return models.Session{ID: id, Identity: identity, ExpiresAt: record.expiresAt}, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	key := Key(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return ErrSessionNotFound
	}
	delete(s.records, key)
	return nil
}

// Sweep drops expired records and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, record := range s.records {
		if !record.expiresAt.After(now) {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
