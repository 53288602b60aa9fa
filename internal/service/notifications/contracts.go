package notifications

import "context"

// EmailSender интерфейс отправки почтовых уведомлений
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMSSender интерфейс отправки SMS-уведомлений
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// HookClient интерфейс запуска внешних автоматизаций (Zapier)
type HookClient interface {
	Trigger(ctx context.Context, hookURL string, payload interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
