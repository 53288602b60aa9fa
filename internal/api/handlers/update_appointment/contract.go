package update_appointment

import (
	"context"

	rescheduleAppointment "github.com/m04kA/SMC-SiteOpsService/internal/usecase/reschedule_appointment"
)

type AppointmentService interface {
	Cancel(ctx context.Context, id string) error
}

type RescheduleAppointmentUseCase interface {
	Execute(ctx context.Context, req *rescheduleAppointment.Request) (*rescheduleAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
