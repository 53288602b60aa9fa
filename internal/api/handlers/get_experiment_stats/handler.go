package get_experiment_stats

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/abtest"
)

const (
	msgMissingTestID = "ID эксперимента обязателен"
	msgTestNotFound  = "эксперимент не найден"
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

// Handle GET /api/v1/abtests/{testId}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем testId из URL
	vars := mux.Vars(r)
	testID := vars["testId"]
	if testID == "" {
		h.logger.Warn("GET /abtests/{id}/stats - Missing test ID")
		handlers.RespondBadRequest(w, msgMissingTestID)
		return
	}

	result, err := h.service.Stats(testID)
	if err != nil {
		switch {
		case errors.Is(err, abtest.ErrTestNotFound):
			h.logger.Warn("GET /abtests/{id}/stats - Test not found: test_id=%s", testID)
			handlers.RespondNotFound(w, msgTestNotFound)

		default:
			h.logger.Error("GET /abtests/{id}/stats - Failed to get stats: test_id=%s, error=%v", testID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /abtests/{id}/stats - Stats retrieved: test_id=%s, variants=%d", testID, len(result.Variants))
	handlers.RespondJSON(w, http.StatusOK, result)
}
