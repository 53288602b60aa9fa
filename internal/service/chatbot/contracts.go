package chatbot

import (
	"context"

	"github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_dates"
)

// DatesProvider интерфейс use case получения дат со свободными слотами.
// Используется, когда распознанное намерение предлагает запись на выезд.
type DatesProvider interface {
	Execute(ctx context.Context, req *get_available_dates.Request) (*get_available_dates.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
