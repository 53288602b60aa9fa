package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// generateSlotStarts генерирует сетку начал слотов на день.
// Сетка идет от времени открытия с шагом slotDuration + bufferMinutes;
// слот попадает в сетку, только если целиком помещается до закрытия
// (конец слота не позже времени закрытия, равенство допустимо).
func generateSlotStarts(hours domain.DayHours, slotDuration, bufferMinutes int) []types.TimeString {
	starts := make([]types.TimeString, 0)

	if !hours.Enabled || hours.Open.IsZero() || hours.Close.IsZero() {
		return starts
	}

	step := slotDuration + bufferMinutes
	current := hours.Open

	for current.IsBefore(hours.Close) {
		end, err := current.AddMinutes(slotDuration)
		if err != nil {
			// Конец слота перевалил за полночь - дальше слотов нет
			break
		}
		if end.IsAfter(hours.Close) {
			break
		}

		starts = append(starts, current)

		next, err := current.AddMinutes(step)
		if err != nil {
			break
		}
		current = next
	}

	return starts
}

// findOccupyingAppointment ищет активную запись, пересекающуюся со слотом.
// Интервалы полуоткрытые: граничащие интервалы пересечением не считаются
// (запись, заканчивающаяся ровно в начале слота, слот не занимает).
func findOccupyingAppointment(
	slotStart types.TimeString,
	slotDuration int,
	appointments []*domain.Appointment,
	excludeID *string,
) *domain.Appointment {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return nil
	}

	for _, appt := range appointments {
		// Отмененные записи слот не занимают
		if !appt.IsActive() {
			continue
		}
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}

		// Строгие неравенства: граничные случаи не считаются пересечением
		if appt.StartTime.IsBefore(slotEnd) && appt.EndTime.IsAfter(slotStart) {
			return appt
		}
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
