package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	rescheduleAppointment "github.com/m04kA/SMC-SiteOpsService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// Действия над записью
const (
	ActionCancel     = "cancel"
	ActionReschedule = "reschedule"
)

// UpdateAppointmentRequest HTTP request model
type UpdateAppointmentRequest struct {
	Action       string `json:"action"`                 // "cancel" или "reschedule"
	NewDate      string `json:"newDate,omitempty"`      // "2026-09-21", только для reschedule
	NewStartTime string `json:"newStartTime,omitempty"` // "10:30", только для reschedule
}

// RescheduledAppointmentResponse HTTP response model для переноса
type RescheduledAppointmentResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	ProjectType   string `json:"projectType"`
	Status        string `json:"status"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case переноса
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID string) (*rescheduleAppointment.Request, error) {
	// Парсим новую дату
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	// Парсим новое время
	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		NewDate:       newDate,
		NewStartTime:  newStartTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduledAppointmentResponse {
	return &RescheduledAppointmentResponse{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		ProjectType:   resp.ProjectType,
		Status:        resp.Status,
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
