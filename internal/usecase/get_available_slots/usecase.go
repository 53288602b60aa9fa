package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// UseCase use case получения слотов на дату с флагами доступности.
// Слоты не хранятся: каждый вызов заново выводит их из рабочих часов
// и текущего состояния журнала записей.
type UseCase struct {
	store        AppointmentStore
	calendar     *domain.CalendarConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store AppointmentStore, calendar *domain.CalendarConfig, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.calendar.Location)

	// Выходной день - слотов нет
	hours := uc.calendar.HoursForDay(req.Date)
	if !hours.Enabled {
		uc.logger.Info("GetAvailableSlots: day %s is disabled", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	starts := generateSlotStarts(hours, uc.calendar.SlotDurationMinutes, uc.calendar.BufferMinutes)

	appointments, err := uc.store.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	pastDate := isDateInPast(req.Date, now)
	today := isSameDay(req.Date, now)
	currentTime := types.NewTimeString(now)

	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		end, err := start.AddMinutes(uc.calendar.SlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, err)
		}

		occupying := findOccupyingAppointment(start, uc.calendar.SlotDurationMinutes, appointments, req.ExcludeAppointmentID)
		booked := occupying != nil

		// Слот доступен, если он свободен и не в прошлом;
		// для сегодняшней даты дополнительно требуем, чтобы начало слота еще не прошло
		available := !booked && !pastDate
		if available && today && start.IsBefore(currentTime) {
			available = false
		}

		slot := Slot{
			ID:        domain.SlotID(req.Date, start),
			StartTime: start,
			EndTime:   end,
			Available: available,
			Booked:    booked,
		}
		if occupying != nil {
			id := occupying.ID
			slot.AppointmentID = &id
		}

		slots = append(slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: slots}, nil
}
