package reschedule_appointment

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.AppointmentID) == "" {
		return fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата подходит для переноса
func validateDate(date time.Time, now time.Time, maxAdvanceDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	// Если maxAdvanceDays = 0, нет ограничений на дату
	if maxAdvanceDays == 0 {
		return nil
	}

	// Проверяем, что дата не превышает горизонт бронирования
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, maxAdvanceDays)

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
