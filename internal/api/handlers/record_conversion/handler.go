package record_conversion

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/abtest"
)

const (
	msgMissingTestID      = "ID эксперимента обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingVisitorID   = "ID посетителя обязателен"
	msgTestNotFound       = "эксперимент не найден"
)

// RecordConversionRequest HTTP request model
type RecordConversionRequest struct {
	VisitorID string `json:"visitorId"`
}

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

// Handle POST /api/v1/abtests/{testId}/convert
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем testId из URL
	vars := mux.Vars(r)
	testID := vars["testId"]
	if testID == "" {
		h.logger.Warn("POST /abtests/{id}/convert - Missing test ID")
		handlers.RespondBadRequest(w, msgMissingTestID)
		return
	}

	// Декодируем body
	var req RecordConversionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /abtests/{id}/convert - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.VisitorID == "" {
		h.logger.Warn("POST /abtests/{id}/convert - Missing visitor ID: test_id=%s", testID)
		handlers.RespondBadRequest(w, msgMissingVisitorID)
		return
	}

	err := h.service.RecordConversion(testID, req.VisitorID)
	if err != nil {
		switch {
		case errors.Is(err, abtest.ErrTestNotFound):
			h.logger.Warn("POST /abtests/{id}/convert - Test not found: test_id=%s", testID)
			handlers.RespondNotFound(w, msgTestNotFound)

		default:
			h.logger.Error("POST /abtests/{id}/convert - Failed to record conversion: test_id=%s, error=%v",
				testID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /abtests/{id}/convert - Conversion recorded: test_id=%s", testID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
