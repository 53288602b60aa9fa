package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrBusinessClosed возвращается, когда в указанную дату нет рабочих часов
	ErrBusinessClosed = errors.New("create_appointment: business is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда запрошенное время не входит в сетку слотов дня
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот уже занят или прошел
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrUnknownProjectType возвращается при неизвестном типе проекта
	ErrUnknownProjectType = errors.New("create_appointment: unknown project type")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
