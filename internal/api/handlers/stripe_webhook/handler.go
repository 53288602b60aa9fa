package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/billing"
)

const (
	msgInvalidPayload   = "некорректное тело вебхука"
	msgInvalidSignature = "невалидная подпись вебхука"

	// Stripe рекомендует ограничивать размер тела вебхука
	maxPayloadBytes = 65536
)

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/stripe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Читаем сырое тело: подпись считается от неразобранных байт
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Failed to read payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}
	defer r.Body.Close()

	sigHeader := r.Header.Get("Stripe-Signature")

	status, err := h.service.HandleWebhookEvent(r.Context(), payload, sigHeader)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidSignature):
			h.logger.Warn("POST /webhooks/stripe - Invalid signature")
			handlers.RespondBadRequest(w, msgInvalidSignature)

		default:
			h.logger.Error("POST /webhooks/stripe - Failed to handle event: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/stripe - Event handled: status=%s", status)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": status})
}
