package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// Notifier интерфейс отправки уведомлений о событиях записей
type Notifier interface {
	AppointmentCancelled(ctx context.Context, appointment *domain.Appointment)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
