package get_available_dates

import "time"

// Request модель запроса на получение дат со свободными слотами
type Request struct {
	// DaysAhead горизонт поиска в днях от завтрашнего дня.
	// Если 0 - используется горизонт из конфигурации календаря.
	DaysAhead int
}

// AvailableDate дата, на которую есть хотя бы один свободный слот
type AvailableDate struct {
	Date           time.Time
	AvailableSlots int // Количество свободных слотов на дату
}

// Response модель ответа с датами
type Response struct {
	Dates []AvailableDate
}
