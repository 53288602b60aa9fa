package get_leads

import (
	"net/http"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
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

// Handle GET /api/v1/leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /leads - Failed to list leads: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /leads - Leads retrieved: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
