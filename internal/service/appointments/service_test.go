package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	appointmentStore "github.com/m04kA/SMC-SiteOpsService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

type stubLogger struct{}

func (l *stubLogger) Info(format string, v ...interface{})  {}
func (l *stubLogger) Warn(format string, v ...interface{})  {}
func (l *stubLogger) Error(format string, v ...interface{}) {}

type recordingNotifier struct {
	cancelled []*domain.Appointment
}

func (n *recordingNotifier) AppointmentCancelled(_ context.Context, appt *domain.Appointment) {
	n.cancelled = append(n.cancelled, appt)
}

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func seedAppointment(t *testing.T, store *appointmentStore.MemoryStore, id string, status domain.AppointmentStatus) {
	t.Helper()

	end, err := mustTime("10:30").AddMinutes(120)
	require.NoError(t, err)

	_, err = store.Create(context.Background(), &domain.Appointment{
		ID:            id,
		CustomerName:  "Анна Соколова",
		CustomerEmail: "anna@example.com",
		CustomerPhone: "+15550110",
		Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime("10:30"),
		EndTime:       end,
		ProjectType:   "kitchen_remodel",
		Address:       "пр. Речной, 4",
		Status:        status,
	})
	require.NoError(t, err)
}

func TestService_GetByID(t *testing.T) {
	store := appointmentStore.NewMemoryStore()
	svc := NewService(store, &recordingNotifier{}, &stubLogger{})

	seedAppointment(t, store, "appt-1", domain.StatusScheduled)

	resp, err := svc.GetByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "2026-09-14", resp.Date)
	assert.Equal(t, "scheduled", resp.Status)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_GetByDate(t *testing.T) {
	store := appointmentStore.NewMemoryStore()
	svc := NewService(store, &recordingNotifier{}, &stubLogger{})

	seedAppointment(t, store, "appt-1", domain.StatusScheduled)

	resp, err := svc.GetByDate(context.Background(), time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.GetByDate(context.Background(), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)

	_, err = svc.GetByDate(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	store := appointmentStore.NewMemoryStore()
	notifier := &recordingNotifier{}
	svc := NewService(store, notifier, &stubLogger{})

	seedAppointment(t, store, "appt-1", domain.StatusConfirmed)

	require.NoError(t, svc.Cancel(context.Background(), "appt-1"))

	stored, err := store.GetByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)

	require.Len(t, notifier.cancelled, 1)
	assert.Equal(t, "appt-1", notifier.cancelled[0].ID)

	// Повторная отмена запрещена
	err = svc.Cancel(context.Background(), "appt-1")
	assert.ErrorIs(t, err, ErrCannotCancel)

	err = svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	store := appointmentStore.NewMemoryStore()
	svc := NewService(store, &recordingNotifier{}, &stubLogger{})

	seedAppointment(t, store, "appt-1", domain.StatusScheduled)

	require.NoError(t, svc.UpdateStatus(context.Background(), "appt-1", "confirmed"))

	stored, err := store.GetByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)

	err = svc.UpdateStatus(context.Background(), "appt-1", "postponed")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), "missing", "confirmed")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
