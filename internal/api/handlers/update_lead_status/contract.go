package update_lead_status

import "context"

type LeadService interface {
	UpdateStatus(ctx context.Context, id string, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
