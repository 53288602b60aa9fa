package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID string           // ID переносимой записи
	NewDate       time.Time        // Новая дата визита (без времени)
	NewStartTime  types.TimeString // Новое время начала слота
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID            string           // ID записи
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	Date          time.Time        // Новая дата визита
	StartTime     types.TimeString // Новое время начала
	EndTime       types.TimeString // Новое время окончания
	ProjectType   string           // Тип проекта
	Status        string           // Статус записи

	UpdatedAt time.Time // Время обновления
}
