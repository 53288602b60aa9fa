package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/appointments"
	rescheduleAppointment "github.com/m04kA/SMC-SiteOpsService/internal/usecase/reschedule_appointment"
)

const (
	msgMissingAppointmentID = "ID записи обязателен"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgUnknownAction        = "неизвестное действие, ожидается cancel или reschedule"
	msgInvalidDateFormat    = "некорректный формат даты или времени"
	msgNotFound             = "запись не найдена"
	msgCannotCancel         = "запись не может быть отменена"
	msgCannotReschedule     = "запись не может быть перенесена"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgBusinessClosed       = "в выбранную дату нет приема"
	msgInvalidDate          = "некорректная дата записи"
	msgDateTooFar           = "дата записи слишком далеко в будущем"
	msgInvalidTimeSlot      = "некорректный временной слот"
)

type Handler struct {
	service    AppointmentService
	reschedule RescheduleAppointmentUseCase
	logger     Logger
}

func NewHandler(service AppointmentService, reschedule RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		service:    service,
		reschedule: reschedule,
		logger:     logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
// Body: {"action": "cancel"} или {"action": "reschedule", "newDate": ..., "newStartTime": ...}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentID := vars["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PATCH /appointments/{id} - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	// Декодируем body
	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch req.Action {
	case ActionCancel:
		h.handleCancel(w, r, appointmentID)
	case ActionReschedule:
		h.handleReschedule(w, r, appointmentID, &req)
	default:
		h.logger.Warn("PATCH /appointments/{id} - Unknown action: appointment_id=%s, action=%s",
			appointmentID, req.Action)
		handlers.RespondBadRequest(w, msgUnknownAction)
	}
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request, appointmentID string) {
	err := h.service.Cancel(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id} - Cannot cancel: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to cancel appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment cancelled successfully: appointment_id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) handleReschedule(w http.ResponseWriter, r *http.Request, appointmentID string, req *UpdateAppointmentRequest) {
	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse request: appointment_id=%s, error=%v",
			appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.reschedule.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrCannotReschedule):
			h.logger.Warn("PATCH /appointments/{id} - Cannot reschedule: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, rescheduleAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments/{id} - Slot not available: appointment_id=%s, new_date=%s, new_start_time=%s",
				appointmentID, req.NewDate, req.NewStartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, rescheduleAppointment.ErrBusinessClosed):
			h.logger.Warn("PATCH /appointments/{id} - Business closed: appointment_id=%s, new_date=%s",
				appointmentID, req.NewDate)
			handlers.RespondBadRequest(w, msgBusinessClosed)

		case errors.Is(err, rescheduleAppointment.ErrInvalidDate):
			h.logger.Warn("PATCH /appointments/{id} - Invalid date: appointment_id=%s, new_date=%s",
				appointmentID, req.NewDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("PATCH /appointments/{id} - Date too far in future: appointment_id=%s, new_date=%s",
				appointmentID, req.NewDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, rescheduleAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /appointments/{id} - Invalid time slot: appointment_id=%s, new_start_time=%s",
				appointmentID, req.NewStartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to reschedule appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /appointments/{id} - Appointment rescheduled successfully: appointment_id=%s, new_date=%s, new_start_time=%s",
		appointmentID, req.NewDate, req.NewStartTime)
	handlers.RespondJSON(w, http.StatusOK, response)
}
