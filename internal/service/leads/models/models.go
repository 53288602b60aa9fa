package models

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
)

// CreateLeadRequest модель запроса на создание заявки
type CreateLeadRequest struct {
	Name        string // Имя клиента
	Email       string // Email клиента
	Phone       string // Телефон клиента (опционально, если есть email)
	ProjectType string // Интересующий тип проекта (опционально)
	Message     string // Сообщение клиента (опционально)
	Source      string // Источник заявки: форма, чат-бот, лендинг
}

// LeadResponse модель заявки для внешних слоев
type LeadResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	ProjectType string    `json:"projectType,omitempty"`
	Message     string    `json:"message,omitempty"`
	Source      string    `json:"source"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LeadListResponse список заявок
type LeadListResponse struct {
	Leads []*LeadResponse `json:"leads"`
	Total int             `json:"total"`
}

// FromDomainLead конвертирует доменную модель в response
func FromDomainLead(lead *domain.Lead) *LeadResponse {
	return &LeadResponse{
		ID:          lead.ID,
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		ProjectType: lead.ProjectType,
		Message:     lead.Message,
		Source:      lead.Source,
		Status:      string(lead.Status),
		CreatedAt:   lead.CreatedAt,
		UpdatedAt:   lead.UpdatedAt,
	}
}

// FromDomainLeadList конвертирует список доменных моделей в response
func FromDomainLeadList(leads []*domain.Lead) *LeadListResponse {
	result := make([]*LeadResponse, 0, len(leads))
	for _, lead := range leads {
		result = append(result, FromDomainLead(lead))
	}
	return &LeadListResponse{
		Leads: result,
		Total: len(result),
	}
}
