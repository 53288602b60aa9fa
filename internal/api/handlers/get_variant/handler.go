package get_variant

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/abtest"
)

const (
	msgMissingTestID    = "ID эксперимента обязателен"
	msgMissingVisitorID = "ID посетителя обязателен"
	msgTestNotFound     = "эксперимент не найден"
)

type Handler struct {
	service ABTestService
	logger  Logger
}

func NewHandler(service ABTestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/abtests/{testId}/variant
// Query params: visitorId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем testId из URL
	vars := mux.Vars(r)
	testID := vars["testId"]
	if testID == "" {
		h.logger.Warn("GET /abtests/{id}/variant - Missing test ID")
		handlers.RespondBadRequest(w, msgMissingTestID)
		return
	}

	// Извлекаем visitorId из query параметров
	visitorID := r.URL.Query().Get("visitorId")
	if visitorID == "" {
		h.logger.Warn("GET /abtests/{id}/variant - Missing visitor ID: test_id=%s", testID)
		handlers.RespondBadRequest(w, msgMissingVisitorID)
		return
	}

	result, err := h.service.GetVariant(testID, visitorID)
	if err != nil {
		switch {
		case errors.Is(err, abtest.ErrTestNotFound):
			h.logger.Warn("GET /abtests/{id}/variant - Test not found: test_id=%s", testID)
			handlers.RespondNotFound(w, msgTestNotFound)

		default:
			h.logger.Error("GET /abtests/{id}/variant - Failed to get variant: test_id=%s, error=%v", testID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /abtests/{id}/variant - Variant assigned: test_id=%s, variant=%s", testID, result.Variant)
	handlers.RespondJSON(w, http.StatusOK, result)
}
