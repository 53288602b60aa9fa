package update_appointment_status

import "context"

type AppointmentService interface {
	UpdateStatus(ctx context.Context, id string, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
