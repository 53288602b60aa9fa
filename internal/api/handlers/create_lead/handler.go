package create_lead

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/leads"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные заявки"
)

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

// Handle POST /api/v1/leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /leads - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель сервиса
	serviceReq := req.ToServiceRequest()

	lead, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidInput):
			h.logger.Warn("POST /leads - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /leads - Failed to create lead: source=%s, error=%v", req.Source, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /leads - Lead created successfully: lead_id=%s, source=%s", lead.ID, lead.Source)
	handlers.RespondJSON(w, http.StatusCreated, lead)
}
