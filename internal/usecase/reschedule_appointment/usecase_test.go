package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	appointmentStore "github.com/m04kA/SMC-SiteOpsService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SiteOpsService/pkg/memtx"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

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

type recordingNotifier struct {
	rescheduled int
	oldDate     time.Time
	oldStart    string
}

func (n *recordingNotifier) AppointmentRescheduled(_ context.Context, _ *domain.Appointment, oldDate time.Time, oldStart string) {
	n.rescheduled++
	n.oldDate = oldDate
	n.oldStart = oldStart
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

type testEnv struct {
	uc       *UseCase
	store    *appointmentStore.MemoryStore
	notifier *recordingNotifier
}

func newTestEnv(now time.Time) *testEnv {
	calendar := testCalendar()
	store := appointmentStore.NewMemoryStore()
	logger := &stubLogger{}
	tp := &fixedTimeProvider{now: now}

	slots := get_available_slots.NewUseCase(store, calendar, logger).WithTimeProvider(tp)
	notifier := &recordingNotifier{}

	uc := NewUseCase(store, slots, calendar, memtx.NewManager(), notifier, logger).
		WithTimeProvider(tp)

	return &testEnv{uc: uc, store: store, notifier: notifier}
}

func seedAppointment(t *testing.T, env *testEnv, id string, date time.Time, start string, status domain.AppointmentStatus) *domain.Appointment {
	t.Helper()

	appt := &domain.Appointment{
		ID:            id,
		CustomerName:  "Анна Соколова",
		CustomerEmail: "anna@example.com",
		CustomerPhone: "+15550110",
		Date:          date,
		StartTime:     mustTime(start),
		EndTime:       mustTimeAdd(start, 120),
		ProjectType:   "kitchen_remodel",
		Address:       "пр. Речной, 4",
		Status:        status,
	}

	created, err := env.store.Create(context.Background(), appt)
	require.NoError(t, err)
	return created
}

func mustTimeAdd(s string, minutes int) types.TimeString {
	ts, err := mustTime(s).AddMinutes(minutes)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestExecute_MoveToAnotherDay(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	seedAppointment(t, env, "appt-1", monday, "10:30", domain.StatusScheduled)

	resp, err := env.uc.Execute(context.Background(), &Request{
		AppointmentID: "appt-1",
		NewDate:       tuesday,
		NewStartTime:  mustTime("13:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-15", resp.Date.Format(domain.DateFormat))
	assert.Equal(t, mustTime("13:00"), resp.StartTime)
	assert.Equal(t, mustTime("15:00"), resp.EndTime)

	stored, err := env.store.GetByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, mustTime("13:00"), stored.StartTime)

	assert.Equal(t, 1, env.notifier.rescheduled)
	assert.Equal(t, "2026-09-14", env.notifier.oldDate.Format(domain.DateFormat))
	assert.Equal(t, "10:30", env.notifier.oldStart)
}

func TestExecute_MoveWithinSameDayNotBlockedBySelf(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	seedAppointment(t, env, "appt-1", monday, "10:30", domain.StatusConfirmed)

	// Перенос на соседний слот того же дня: собственный слот не мешает
	resp, err := env.uc.Execute(context.Background(), &Request{
		AppointmentID: "appt-1",
		NewDate:       monday,
		NewStartTime:  mustTime("08:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, mustTime("08:00"), resp.StartTime)
}

func TestExecute_TargetSlotOccupiedLeavesAppointmentUnchanged(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	seedAppointment(t, env, "appt-1", monday, "10:30", domain.StatusScheduled)
	seedAppointment(t, env, "appt-2", monday, "13:00", domain.StatusScheduled)

	_, err := env.uc.Execute(context.Background(), &Request{
		AppointmentID: "appt-1",
		NewDate:       monday,
		NewStartTime:  mustTime("13:00"),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Исходная запись не изменилась
	stored, err := env.store.GetByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, mustTime("10:30"), stored.StartTime)
	assert.Equal(t, 0, env.notifier.rescheduled)
}

func TestExecute_StatusForbidsReschedule(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	seedAppointment(t, env, "appt-cancelled", monday, "08:00", domain.StatusCancelled)
	seedAppointment(t, env, "appt-completed", monday, "10:30", domain.StatusCompleted)

	for _, id := range []string{"appt-cancelled", "appt-completed"} {
		_, err := env.uc.Execute(context.Background(), &Request{
			AppointmentID: id,
			NewDate:       tuesday,
			NewStartTime:  mustTime("08:00"),
		})
		assert.ErrorIs(t, err, ErrCannotReschedule)
	}
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	_, err := env.uc.Execute(context.Background(), &Request{
		AppointmentID: "missing",
		NewDate:       tuesday,
		NewStartTime:  mustTime("08:00"),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_TargetValidation(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	seedAppointment(t, env, "appt-1", monday, "10:30", domain.StatusScheduled)

	// Дата в прошлом
	past := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	_, err := env.uc.Execute(context.Background(), &Request{
		AppointmentID: "appt-1",
		NewDate:       past,
		NewStartTime:  mustTime("08:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Выходной день
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	_, err = env.uc.Execute(context.Background(), &Request{
		AppointmentID: "appt-1",
		NewDate:       sunday,
		NewStartTime:  mustTime("08:00"),
	})
	assert.ErrorIs(t, err, ErrBusinessClosed)

	// Время вне сетки
	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	_, err = env.uc.Execute(context.Background(), &Request{
		AppointmentID: "appt-1",
		NewDate:       tuesday,
		NewStartTime:  mustTime("09:15"),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}
