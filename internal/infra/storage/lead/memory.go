package lead

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
)

// MemoryStore архив заявок в памяти - хранилище по умолчанию
type MemoryStore struct {
	mu    sync.RWMutex
	leads map[string]*domain.Lead
	now   func() time.Time
}

// NewMemoryStore создает пустой архив заявок в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		leads: make(map[string]*domain.Lead),
		now:   time.Now,
	}
}

// Create сохраняет новую заявку
func (s *MemoryStore) Create(_ context.Context, lead *domain.Lead) (*domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *lead
	now := s.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.leads[stored.ID] = &stored

	result := stored
	return &result, nil
}

// List возвращает все заявки, новые первыми
func (s *MemoryStore) List(_ context.Context) ([]*domain.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Lead, 0, len(s.leads))
	for _, lead := range s.leads {
		clone := *lead
		result = append(result, &clone)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// UpdateStatus меняет статус заявки
func (s *MemoryStore) UpdateStatus(_ context.Context, id string, status domain.LeadStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.leads[id]
	if !ok {
		return ErrLeadNotFound
	}

	stored.Status = status
	stored.UpdatedAt = s.now()
	return nil
}
