package get_available_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_slots"
)

// UseCase use case получения ближайших дат, на которые есть свободные слоты.
// Доступность каждой даты выводится тем же способом, что и слоты самой даты,
// поэтому ответ всегда согласован с GET слотов на дату.
type UseCase struct {
	slots        SlotsProvider
	calendar     *domain.CalendarConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slots SlotsProvider, calendar *domain.CalendarConfig, logger Logger) *UseCase {
	return &UseCase{
		slots:        slots,
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

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	daysAhead := req.DaysAhead
	if daysAhead == 0 {
		daysAhead = uc.calendar.MaxAdvanceDays
	}
	// Горизонт не может превышать максимальный из конфигурации
	if daysAhead > uc.calendar.MaxAdvanceDays {
		daysAhead = uc.calendar.MaxAdvanceDays
	}

	now := uc.timeProvider.Now().In(uc.calendar.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.calendar.Location)

	dates := make([]AvailableDate, 0, daysAhead)
	for offset := 1; offset <= daysAhead; offset++ {
		date := today.AddDate(0, 0, offset)

		// Выходные дни пропускаем без обращения к хранилищу
		if !uc.calendar.HoursForDay(date).Enabled {
			continue
		}

		resp, err := uc.slots.Execute(ctx, &get_available_slots.Request{Date: date})
		if err != nil {
			uc.logger.Error("GetAvailableDates: failed to get slots for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get slots for %s: %v",
				ErrInternal, date.Format(domain.DateFormat), err)
		}

		available := 0
		for _, slot := range resp.Slots {
			if slot.Available {
				available++
			}
		}

		if available > 0 {
			dates = append(dates, AvailableDate{Date: date, AvailableSlots: available})
		}
	}

	uc.logger.Info("GetAvailableDates: found %d dates within %d days", len(dates), daysAhead)

	return &Response{Dates: dates}, nil
}
