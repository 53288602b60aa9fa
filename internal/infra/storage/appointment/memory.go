package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
)

// MemoryStore журнал записей в памяти - хранилище по умолчанию.
// Состояние теряется при рестарте процесса, это осознанное ограничение:
// для персистентности переключите storage.driver на postgres.
//
// Сам по себе store потокобезопасен (RWMutex), но паттерн
// check-then-act при бронировании сериализуется выше -
// через memtx.Manager в use case.
type MemoryStore struct {
	mu           sync.RWMutex
	appointments map[string]*domain.Appointment
	now          func() time.Time
}

// NewMemoryStore создает пустой журнал записей в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		appointments: make(map[string]*domain.Appointment),
		now:          time.Now,
	}
}

// Create сохраняет новую запись и проставляет created_at/updated_at
func (s *MemoryStore) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.appointments[appt.ID]; exists {
		return nil, ErrDuplicateID
	}

	stored := cloneAppointment(appt)
	now := s.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.appointments[stored.ID] = stored

	return cloneAppointment(stored), nil
}

// GetByID возвращает запись по идентификатору
func (s *MemoryStore) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appt, ok := s.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return cloneAppointment(appt), nil
}

// GetByDate возвращает все записи на дату, отсортированные по времени начала
func (s *MemoryStore) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range s.appointments {
		if sameDay(appt.Date, date) {
			result = append(result, cloneAppointment(appt))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result, nil
}

// Update перезаписывает изменяемые поля записи и обновляет updated_at
func (s *MemoryStore) Update(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.appointments[appt.ID]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	stored.Date = appt.Date
	stored.StartTime = appt.StartTime
	stored.EndTime = appt.EndTime
	stored.Status = appt.Status
	stored.Notes = appt.Notes
	stored.EstimatedCost = appt.EstimatedCost
	stored.UpdatedAt = s.now()

	return cloneAppointment(stored), nil
}

// UpdateStatus меняет статус записи и обновляет updated_at
func (s *MemoryStore) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.appointments[id]
	if !ok {
		return ErrAppointmentNotFound
	}

	stored.Status = status
	stored.UpdatedAt = s.now()
	return nil
}

// cloneAppointment возвращает глубокую копию записи,
// чтобы вызывающий код не мог изменить состояние store напрямую
func cloneAppointment(appt *domain.Appointment) *domain.Appointment {
	clone := *appt
	if appt.Notes != nil {
		notes := *appt.Notes
		clone.Notes = &notes
	}
	if appt.EstimatedCost != nil {
		cost := *appt.EstimatedCost
		clone.EstimatedCost = &cost
	}
	return &clone
}

// sameDay проверяет, что две даты относятся к одному дню
func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
