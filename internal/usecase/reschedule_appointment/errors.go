package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrCannotReschedule возвращается, когда статус записи не допускает перенос
	ErrCannotReschedule = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("reschedule_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("reschedule_appointment: date is too far in the future")

	// ErrBusinessClosed возвращается, когда в указанную дату нет рабочих часов
	ErrBusinessClosed = errors.New("reschedule_appointment: business is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда запрошенное время не входит в сетку слотов дня
	ErrInvalidTimeSlot = errors.New("reschedule_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда целевой слот уже занят или прошел
	ErrSlotNotAvailable = errors.New("reschedule_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
