package stripe_webhook

import "context"

type BillingService interface {
	HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
