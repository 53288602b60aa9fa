package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone string           // Телефон клиента
	Date          time.Time        // Дата визита (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:30")
	ProjectType   string           // Тип проекта из конфигурации
	Address       string           // Адрес объекта
	Notes         *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID            string           // ID созданной записи
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone string           // Телефон клиента
	Date          time.Time        // Дата визита
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время окончания
	ProjectType   string           // Тип проекта
	Address       string           // Адрес объекта
	Notes         *string          // Заметки
	Status        string           // Статус записи
	EstimatedCost *float64         // Базовая оценка стоимости по типу проекта

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
