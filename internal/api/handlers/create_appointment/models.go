package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SiteOpsService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`      // "2026-09-14"
	StartTime     string  `json:"startTime"` // "10:30"
	ProjectType   string  `json:"projectType"`
	Address       string  `json:"address"`
	Notes         *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string   `json:"id"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	ProjectType   string   `json:"projectType"`
	Address       string   `json:"address"`
	Notes         *string  `json:"notes,omitempty"`
	Status        string   `json:"status"`
	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     startTime,
		ProjectType:   r.ProjectType,
		Address:       r.Address,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		ProjectType:   resp.ProjectType,
		Address:       resp.Address,
		Notes:         resp.Notes,
		Status:        resp.Status,
		EstimatedCost: resp.EstimatedCost,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
