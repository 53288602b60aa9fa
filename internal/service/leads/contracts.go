package leads

import (
	"context"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
)

// LeadRepository интерфейс репозитория заявок
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	List(ctx context.Context) ([]*domain.Lead, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error
}

// Notifier интерфейс отправки уведомлений о новых заявках
type Notifier interface {
	LeadCaptured(ctx context.Context, lead *domain.Lead)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
