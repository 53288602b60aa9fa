package chatbot_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/chatbot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyMessage       = "сообщение не может быть пустым"
)

// ChatMessageRequest HTTP request model
type ChatMessageRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

type Handler struct {
	service ChatbotService
	logger  Logger
}

func NewHandler(service ChatbotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/chatbot/message
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chatbot/message - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ProcessMessage(r.Context(), &chatbot.Request{
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, chatbot.ErrInvalidInput):
			h.logger.Warn("POST /chatbot/message - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmptyMessage)

		default:
			h.logger.Error("POST /chatbot/message - Failed to process message: session_id=%s, error=%v",
				req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chatbot/message - Message processed: session_id=%s, intent=%s", result.SessionID, result.Intent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
