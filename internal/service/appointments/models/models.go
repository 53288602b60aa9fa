package models

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// AppointmentResponse модель записи для внешних слоев
type AppointmentResponse struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	CustomerPhone string           `json:"customerPhone"`
	Date          string           `json:"date"`
	StartTime     types.TimeString `json:"startTime"`
	EndTime       types.TimeString `json:"endTime"`
	ProjectType   string           `json:"projectType"`
	Address       string           `json:"address"`
	Notes         *string          `json:"notes,omitempty"`
	Status        string           `json:"status"`
	EstimatedCost *float64         `json:"estimatedCost,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует доменную модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            appt.ID,
		CustomerName:  appt.CustomerName,
		CustomerEmail: appt.CustomerEmail,
		CustomerPhone: appt.CustomerPhone,
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
		ProjectType:   appt.ProjectType,
		Address:       appt.Address,
		Notes:         appt.Notes,
		Status:        string(appt.Status),
		EstimatedCost: appt.EstimatedCost,
		CreatedAt:     appt.CreatedAt,
		UpdatedAt:     appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей в response
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		result = append(result, FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}
