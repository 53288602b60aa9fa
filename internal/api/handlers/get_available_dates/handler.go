package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_dates"
)

const (
	msgInvalidDaysAhead = "некорректное значение daysAhead"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/available-dates
// Query params: daysAhead (optional, по умолчанию горизонт из конфигурации)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var daysAhead int

	// Извлекаем daysAhead из query параметров
	daysAheadStr := r.URL.Query().Get("daysAhead")
	if daysAheadStr != "" {
		parsed, err := strconv.Atoi(daysAheadStr)
		if err != nil {
			h.logger.Warn("GET /appointments/available-dates - Invalid daysAhead: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDaysAhead)
			return
		}
		daysAhead = parsed
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{DaysAhead: daysAhead})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /appointments/available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /appointments/available-dates - Failed to get dates: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /appointments/available-dates - Dates retrieved: total=%d", response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
