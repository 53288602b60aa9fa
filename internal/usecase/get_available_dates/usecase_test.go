package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

type stubSlotsProvider struct {
	// availableByDate количество свободных слотов на дату "YYYY-MM-DD"
	availableByDate map[string]int
	requestedDates  []string
}

func (s *stubSlotsProvider) Execute(_ context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
	key := req.Date.Format(domain.DateFormat)
	s.requestedDates = append(s.requestedDates, key)

	count := s.availableByDate[key]
	slots := make([]get_available_slots.Slot, 0, count+1)
	for i := 0; i < count; i++ {
		slots = append(slots, get_available_slots.Slot{Available: true})
	}
	// Занятый слот есть всегда, он не должен влиять на подсчет
	slots = append(slots, get_available_slots.Slot{Available: false, Booked: true})

	return &get_available_slots.Response{Date: req.Date, Slots: slots}, nil
}

type stubLogger struct{}

func (l *stubLogger) Info(format string, v ...interface{})  {}
func (l *stubLogger) Warn(format string, v ...interface{})  {}
func (l *stubLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func testCalendar() *domain.CalendarConfig {
	weekday := domain.DayHours{Enabled: true, Open: mustTime("08:00"), Close: mustTime("17:00")}
	return &domain.CalendarConfig{
		Hours: domain.BusinessHours{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
			Saturday:  weekday,
			Sunday:    domain.DayHours{Enabled: false},
		},
		SlotDurationMinutes: 120,
		BufferMinutes:       30,
		MaxAdvanceDays:      30,
		Timezone:            "UTC",
		Location:            time.UTC,
	}
}

func TestExecute_ReturnsDatesWithFreeSlots(t *testing.T) {
	// Сегодня четверг 2026-09-10; горизонт 4 дня: пт 11, сб 12, вс 13, пн 14
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	slots := &stubSlotsProvider{availableByDate: map[string]int{
		"2026-09-11": 2,
		"2026-09-12": 0,
		"2026-09-14": 3,
	}}

	uc := NewUseCase(slots, testCalendar(), &stubLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{DaysAhead: 4})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 2)

	assert.Equal(t, "2026-09-11", resp.Dates[0].Date.Format(domain.DateFormat))
	assert.Equal(t, 2, resp.Dates[0].AvailableSlots)
	assert.Equal(t, "2026-09-14", resp.Dates[1].Date.Format(domain.DateFormat))
	assert.Equal(t, 3, resp.Dates[1].AvailableSlots)
}

func TestExecute_DisabledWeekdaySkippedWithoutLookup(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	slots := &stubSlotsProvider{availableByDate: map[string]int{}}

	uc := NewUseCase(slots, testCalendar(), &stubLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	_, err := uc.Execute(context.Background(), &Request{DaysAhead: 4})
	require.NoError(t, err)

	// Воскресенье 2026-09-13 выключено и не должно запрашиваться вовсе
	assert.NotContains(t, slots.requestedDates, "2026-09-13")
	assert.Len(t, slots.requestedDates, 3)
}

func TestExecute_HorizonCappedByMaxAdvanceDays(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	slots := &stubSlotsProvider{availableByDate: map[string]int{}}

	calendar := testCalendar()
	calendar.MaxAdvanceDays = 7

	uc := NewUseCase(slots, calendar, &stubLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	_, err := uc.Execute(context.Background(), &Request{DaysAhead: 365})
	require.NoError(t, err)

	// 7 дней горизонта минус одно выключенное воскресенье
	assert.Len(t, slots.requestedDates, 6)
}

func TestExecute_ZeroDaysAheadUsesConfiguredHorizon(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	slots := &stubSlotsProvider{availableByDate: map[string]int{}}

	calendar := testCalendar()
	calendar.MaxAdvanceDays = 3

	uc := NewUseCase(slots, calendar, &stubLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	_, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-09-11", "2026-09-12"}, slots.requestedDates)
}

func TestExecute_NegativeDaysAheadRejected(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&stubSlotsProvider{}, testCalendar(), &stubLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	_, err := uc.Execute(context.Background(), &Request{DaysAhead: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
