package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/pkg/ptr"
)

func newTestAppointment(id string, date time.Time, start string) *domain.Appointment {
	return &domain.Appointment{
		ID:            id,
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
		CustomerPhone: "+15550100",
		Date:          date,
		StartTime:     mustTime(start),
		EndTime:       mustTimeAdd(start, 120),
		ProjectType:   "kitchen_remodel",
		Address:       "ул. Кленовая, 12",
		Status:        domain.StatusScheduled,
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	created, err := store.Create(ctx, newTestAppointment("appt-1", date, "10:00"))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := store.GetByID(ctx, "appt-1")
	require.NoError(t, err)
	assert.Equal(t, "appt-1", got.ID)
	assert.Equal(t, domain.StatusScheduled, got.Status)

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestMemoryStore_DuplicateID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	_, err := store.Create(ctx, newTestAppointment("appt-1", date, "10:00"))
	require.NoError(t, err)

	_, err = store.Create(ctx, newTestAppointment("appt-1", date, "13:00"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestMemoryStore_GetByDate_SortedByStartTime(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	otherDate := date.AddDate(0, 0, 1)

	_, err := store.Create(ctx, newTestAppointment("late", date, "15:30"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newTestAppointment("early", date, "08:00"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newTestAppointment("middle", date, "10:30"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newTestAppointment("other-day", otherDate, "08:00"))
	require.NoError(t, err)

	appointments, err := store.GetByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, appointments, 3)
	assert.Equal(t, "early", appointments[0].ID)
	assert.Equal(t, "middle", appointments[1].ID)
	assert.Equal(t, "late", appointments[2].ID)
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	created, err := store.Create(ctx, newTestAppointment("appt-1", date, "10:00"))
	require.NoError(t, err)

	require.NoError(t, store.UpdateStatus(ctx, "appt-1", domain.StatusCancelled))

	got, err := store.GetByID(ctx, "appt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	assert.False(t, got.UpdatedAt.Before(created.UpdatedAt))

	assert.ErrorIs(t, store.UpdateStatus(ctx, "missing", domain.StatusConfirmed), ErrAppointmentNotFound)
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	created, err := store.Create(ctx, newTestAppointment("appt-1", date, "10:00"))
	require.NoError(t, err)

	created.Date = date.AddDate(0, 0, 2)
	created.StartTime = mustTime("13:00")
	created.EndTime = mustTime("15:00")
	created.Notes = ptr.Ptr("перенесено по просьбе клиента")

	updated, err := store.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, mustTime("13:00"), updated.StartTime)

	got, err := store.GetByID(ctx, "appt-1")
	require.NoError(t, err)
	assert.Equal(t, mustTime("13:00"), got.StartTime)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "перенесено по просьбе клиента", *got.Notes)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	_, err := store.Create(ctx, newTestAppointment("appt-1", date, "10:00"))
	require.NoError(t, err)

	got, err := store.GetByID(ctx, "appt-1")
	require.NoError(t, err)

	// Мутация полученной копии не должна менять состояние store
	got.Status = domain.StatusCompleted

	fresh, err := store.GetByID(ctx, "appt-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, fresh.Status)
}
