package create_appointment

import (
	"context"
	"sync"
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
	mu     sync.Mutex
	booked []*domain.Appointment
}

func (n *recordingNotifier) AppointmentBooked(_ context.Context, appointment *domain.Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.booked = append(n.booked, appointment)
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

	prices := map[string]float64{
		"kitchen_remodel":  15000,
		"bathroom_remodel": 9000,
	}

	notifier := &recordingNotifier{}
	uc := NewUseCase(store, slots, calendar, prices, memtx.NewManager(), notifier, logger).
		WithTimeProvider(tp)

	return &testEnv{uc: uc, store: store, notifier: notifier}
}

func validRequest(date time.Time, start string) *Request {
	return &Request{
		CustomerName:  "Анна Соколова",
		CustomerEmail: "anna@example.com",
		CustomerPhone: "+15550110",
		Date:          date,
		StartTime:     mustTime(start),
		ProjectType:   "kitchen_remodel",
		Address:       "пр. Речной, 4",
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	resp, err := env.uc.Execute(context.Background(), validRequest(date, "10:30"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, mustTime("10:30"), resp.StartTime)
	assert.Equal(t, mustTime("12:30"), resp.EndTime)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	require.NotNil(t, resp.EstimatedCost)
	assert.Equal(t, 15000.0, *resp.EstimatedCost)
	assert.False(t, resp.CreatedAt.IsZero())

	stored, err := env.store.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, stored.Status)

	require.Len(t, env.notifier.booked, 1)
	assert.Equal(t, resp.ID, env.notifier.booked[0].ID)
}

func TestExecute_DoubleBookingRejected(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	_, err := env.uc.Execute(context.Background(), validRequest(date, "10:30"))
	require.NoError(t, err)

	_, err = env.uc.Execute(context.Background(), validRequest(date, "10:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ConcurrentDoubleBookingAdmitsOneWinner(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.uc.Execute(context.Background(), validRequest(date, "10:30"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	rejected := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, ErrSlotNotAvailable)
		rejected++
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
}

func TestExecute_CancelledSlotCanBeRebooked(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)
	ctx := context.Background()

	resp, err := env.uc.Execute(ctx, validRequest(date, "10:30"))
	require.NoError(t, err)

	require.NoError(t, env.store.UpdateStatus(ctx, resp.ID, domain.StatusCancelled))

	resp2, err := env.uc.Execute(ctx, validRequest(date, "10:30"))
	require.NoError(t, err)
	assert.NotEqual(t, resp.ID, resp2.ID)
}

func TestExecute_TimeOutsideSlotGrid(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	// 10:00 не является началом слота: сетка 08:00, 10:30, 13:00
	_, err := env.uc.Execute(context.Background(), validRequest(date, "10:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ClosedDay(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	_, err := env.uc.Execute(context.Background(), validRequest(sunday, "10:30"))
	assert.ErrorIs(t, err, ErrBusinessClosed)
}

func TestExecute_DateValidation(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	past := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	_, err := env.uc.Execute(context.Background(), validRequest(past, "10:30"))
	assert.ErrorIs(t, err, ErrInvalidDate)

	tooFar := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	_, err = env.uc.Execute(context.Background(), validRequest(tooFar, "10:30"))
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_UnknownProjectType(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	req := validRequest(date, "10:30")
	req.ProjectType = "pool_installation"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownProjectType)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(now)

	req := validRequest(date, "10:30")
	req.CustomerEmail = "not-an-email"
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest(date, "10:30")
	req.CustomerName = "   "
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest(date, "10:30")
	req.StartTime = ""
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
