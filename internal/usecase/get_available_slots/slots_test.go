package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func dayHours(open, close string) domain.DayHours {
	return domain.DayHours{
		Enabled: true,
		Open:    mustTime(open),
		Close:   mustTime(close),
	}
}

func TestGenerateSlotStarts_StandardDay(t *testing.T) {
	// 08:00-17:00, слот 120 минут, буфер 30 минут:
	// 08:00 (конец 10:00), 10:30 (конец 12:30), 13:00 (конец 15:00);
	// следующий кандидат 15:30 закончился бы в 17:30 - за закрытием
	starts := generateSlotStarts(dayHours("08:00", "17:00"), 120, 30)

	require.Len(t, starts, 3)
	assert.Equal(t, mustTime("08:00"), starts[0])
	assert.Equal(t, mustTime("10:30"), starts[1])
	assert.Equal(t, mustTime("13:00"), starts[2])
}

func TestGenerateSlotStarts_StepIsDurationPlusBuffer(t *testing.T) {
	starts := generateSlotStarts(dayHours("08:00", "20:00"), 90, 15)
	require.True(t, len(starts) >= 2)

	for i := 1; i < len(starts); i++ {
		prev, err := starts[i-1].TotalMinutes()
		require.NoError(t, err)
		cur, err := starts[i].TotalMinutes()
		require.NoError(t, err)
		assert.Equal(t, 105, cur-prev)
	}
}

func TestGenerateSlotStarts_SlotEndingExactlyAtCloseIsIncluded(t *testing.T) {
	// 09:00-13:00, слот 120 минут без буфера:
	// 09:00 (конец 11:00) и 11:00 (конец ровно 13:00) - оба помещаются
	starts := generateSlotStarts(dayHours("09:00", "13:00"), 120, 0)

	require.Len(t, starts, 2)
	assert.Equal(t, mustTime("09:00"), starts[0])
	assert.Equal(t, mustTime("11:00"), starts[1])
}

func TestGenerateSlotStarts_WindowShorterThanSlot(t *testing.T) {
	starts := generateSlotStarts(dayHours("09:00", "10:00"), 120, 30)
	assert.Empty(t, starts)
}

func TestGenerateSlotStarts_DisabledDay(t *testing.T) {
	hours := domain.DayHours{Enabled: false, Open: mustTime("08:00"), Close: mustTime("17:00")}
	starts := generateSlotStarts(hours, 120, 30)
	assert.Empty(t, starts)
}

func TestFindOccupyingAppointment_Overlap(t *testing.T) {
	appt := &domain.Appointment{
		ID:        "appt-1",
		StartTime: mustTime("10:30"),
		EndTime:   mustTime("12:30"),
		Status:    domain.StatusScheduled,
	}
	appointments := []*domain.Appointment{appt}

	found := findOccupyingAppointment(mustTime("10:30"), 120, appointments, nil)
	require.NotNil(t, found)
	assert.Equal(t, "appt-1", found.ID)

	// Частичное пересечение тоже считается занятостью
	found = findOccupyingAppointment(mustTime("11:00"), 120, appointments, nil)
	assert.NotNil(t, found)
}

func TestFindOccupyingAppointment_AdjacentIntervalsDoNotOverlap(t *testing.T) {
	appt := &domain.Appointment{
		ID:        "appt-1",
		StartTime: mustTime("08:00"),
		EndTime:   mustTime("10:00"),
		Status:    domain.StatusConfirmed,
	}
	appointments := []*domain.Appointment{appt}

	// Запись заканчивается ровно в начале слота - слот свободен
	found := findOccupyingAppointment(mustTime("10:00"), 120, appointments, nil)
	assert.Nil(t, found)

	// Запись начинается ровно в конце слота - слот свободен
	found = findOccupyingAppointment(mustTime("06:00"), 120, appointments, nil)
	assert.Nil(t, found)
}

func TestFindOccupyingAppointment_StatusDeterminesOccupancy(t *testing.T) {
	// Слот занимают все статусы, кроме отмененного
	for _, status := range domain.AllStatuses {
		appt := &domain.Appointment{
			ID:        "appt-1",
			StartTime: mustTime("10:00"),
			EndTime:   mustTime("12:00"),
			Status:    status,
		}

		found := findOccupyingAppointment(mustTime("10:00"), 120, []*domain.Appointment{appt}, nil)
		if status == domain.StatusCancelled {
			assert.Nil(t, found, "status %s must not occupy the slot", status)
		} else {
			assert.NotNil(t, found, "status %s must occupy the slot", status)
		}
	}
}

func TestFindOccupyingAppointment_ExcludedAppointmentIgnored(t *testing.T) {
	appt := &domain.Appointment{
		ID:        "appt-1",
		StartTime: mustTime("10:00"),
		EndTime:   mustTime("12:00"),
		Status:    domain.StatusScheduled,
	}
	appointments := []*domain.Appointment{appt}

	excludeID := "appt-1"
	found := findOccupyingAppointment(mustTime("10:00"), 120, appointments, &excludeID)
	assert.Nil(t, found)

	otherID := "appt-2"
	found = findOccupyingAppointment(mustTime("10:00"), 120, appointments, &otherID)
	assert.NotNil(t, found)
}
