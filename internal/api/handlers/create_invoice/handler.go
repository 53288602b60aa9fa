package create_invoice

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/billing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные счета"
	msgPaymentProvider    = "ошибка платежного провайдера"
)

// CreateInvoiceRequest HTTP request model
type CreateInvoiceRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	AmountCents   int64  `json:"amountCents"`
	Currency      string `json:"currency"`
	Description   string `json:"description"`
}

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

// Handle POST /api/v1/invoices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /invoices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateInvoice(r.Context(), &billing.CreateInvoiceRequest{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		AmountCents:   req.AmountCents,
		Currency:      req.Currency,
		Description:   req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidInput):
			h.logger.Warn("POST /invoices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, billing.ErrPaymentProvider):
			h.logger.Error("POST /invoices - Payment provider error: customer_email=%s, error=%v",
				req.CustomerEmail, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentProvider)

		default:
			h.logger.Error("POST /invoices - Failed to create invoice: customer_email=%s, error=%v",
				req.CustomerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invoices - Invoice created successfully: invoice_id=%s, amount_cents=%d, mirrored=%t",
		result.ID, req.AmountCents, result.MirroredToFreshBooks)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
