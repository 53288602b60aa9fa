package update_lead_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/leads"
)

const (
	msgMissingLeadID      = "ID заявки обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый статус заявки"
	msgNotFound           = "заявка не найдена"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type Handler struct {
	service LeadService
	logger  Logger
}

func NewHandler(service LeadService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/leads/{leadId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем leadId из URL
	vars := mux.Vars(r)
	leadID := vars["leadId"]
	if leadID == "" {
		h.logger.Warn("PATCH /leads/{id}/status - Missing lead ID")
		handlers.RespondBadRequest(w, msgMissingLeadID)
		return
	}

	// Декодируем body
	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /leads/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.UpdateStatus(r.Context(), leadID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrLeadNotFound):
			h.logger.Warn("PATCH /leads/{id}/status - Lead not found: lead_id=%s", leadID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, leads.ErrInvalidStatus):
			h.logger.Warn("PATCH /leads/{id}/status - Invalid status: lead_id=%s, status=%s", leadID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /leads/{id}/status - Failed to update status: lead_id=%s, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /leads/{id}/status - Status updated successfully: lead_id=%s, status=%s", leadID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
