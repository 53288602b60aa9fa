package create_lead

import (
	"github.com/m04kA/SMC-SiteOpsService/internal/service/leads/models"
)

// CreateLeadRequest HTTP request model
type CreateLeadRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Message     string `json:"message,omitempty"`
	Source      string `json:"source"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateLeadRequest) ToServiceRequest() *models.CreateLeadRequest {
	return &models.CreateLeadRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		ProjectType: r.ProjectType,
		Message:     r.Message,
		Source:      r.Source,
	}
}
