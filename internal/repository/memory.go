package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"rondas/internal/domain"
)

// MemoryStore is the in-memory record log used by tests. It preserves
// insertion order like the durable backends.
type MemoryStore struct {
	mu     sync.Mutex
	rondas []domain.Ronda
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(ctx context.Context, ronda *domain.Ronda) error {
	if !ronda.Status.Valid() {
		return ErrInvalidStatus
	}

	ronda.ID = uuid.New()
	ronda.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rondas = append(s.rondas, *ronda)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Rondas returns a copy of the appended records for test assertions.
func (s *MemoryStore) Rondas() []domain.Ronda {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ronda, len(s.rondas))
	copy(out, s.rondas)
	return out
}
