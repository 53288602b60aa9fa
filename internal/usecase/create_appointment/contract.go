package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_slots"
)

// AppointmentStore интерфейс хранилища записей
type AppointmentStore interface {
	// Create создает новую запись
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// SlotsProvider интерфейс use case получения слотов на дату.
// Создание записи заново выводит сетку слотов и проверяет запрошенное
// время по ней же - отдельной логики занятости здесь нет.
type SlotsProvider interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в сериализуемой транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений о событиях записей.
// Ошибки доставки не влияют на результат use case.
type Notifier interface {
	AppointmentBooked(ctx context.Context, appointment *domain.Appointment)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
