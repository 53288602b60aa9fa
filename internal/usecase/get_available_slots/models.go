package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)

	// ExcludeAppointmentID запись, которую нужно игнорировать при подсчете занятости.
	// Используется при переносе: собственный слот записи не должен блокировать её же перенос.
	// HTTP-слой это поле не заполняет.
	ExcludeAppointmentID *string
}

// Response модель ответа со слотами на дату
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Все слоты дня с флагами доступности
}

// Slot модель временного слота
type Slot struct {
	ID            string           // Детерминированный ID слота: "YYYY-MM-DD_HH:MM"
	StartTime     types.TimeString // Время начала слота
	EndTime       types.TimeString // Время окончания слота (начало + длительность)
	Available     bool             // Можно ли бронировать слот
	Booked        bool             // Занят ли слот активной записью
	AppointmentID *string          // ID занимающей записи, если слот занят
}
