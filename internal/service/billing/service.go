package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/stripe/stripe-go/v79"

	"github.com/m04kA/SMC-SiteOpsService/internal/integrations/freshbooks"
	"github.com/m04kA/SMC-SiteOpsService/internal/integrations/stripeinvoice"
	"github.com/m04kA/SMC-SiteOpsService/pkg/metrics"
)

// Service сервис выставления счетов и обработки платежных событий.
// Stripe - основной провайдер; FreshBooks получает зеркальную копию
// счета для бухгалтерии и при недоступности просто пропускается
type Service struct {
	stripeClient StripeClient
	freshbooks   FreshBooksClient
	notifier     Notifier
	metrics      *metrics.Metrics
	logger       Logger

	// Идемпотентность вебхуков: Stripe повторяет доставку событий
	mu        sync.Mutex
	processed map[string]struct{}
}

// NewService создает новый экземпляр сервиса биллинга
// freshbooks может быть nil, если интеграция выключена;
// metrics может быть nil, если метрики выключены
func NewService(stripeClient StripeClient, fb FreshBooksClient, notifier Notifier, m *metrics.Metrics, logger Logger) *Service {
	return &Service{
		stripeClient: stripeClient,
		freshbooks:   fb,
		notifier:     notifier,
		metrics:      m,
		logger:       logger,
		processed:    make(map[string]struct{}),
	}
}

// CreateInvoice выставляет счет через Stripe и зеркалирует его в FreshBooks
func (s *Service) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*InvoiceResponse, error) {
	if err := validateCreateInvoiceRequest(req); err != nil {
		s.logger.Warn("CreateInvoice: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("CreateInvoice: email=%s, amount=%d %s", req.CustomerEmail, req.AmountCents, req.Currency)

	invoice, err := s.stripeClient.CreateInvoice(ctx, &stripeinvoice.InvoiceRequest{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		AmountCents:   req.AmountCents,
		Currency:      req.Currency,
		Description:   req.Description,
	})
	if err != nil {
		if errors.Is(err, stripeinvoice.ErrInvalidRequest) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("CreateInvoice: stripe error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	mirrored := s.mirrorToFreshBooks(ctx, req, invoice)

	s.logger.Info("CreateInvoice: created invoice id=%s, mirrored=%t", invoice.ID, mirrored)

	return &InvoiceResponse{
		ID:                   invoice.ID,
		Status:               invoice.Status,
		AmountDueCents:       invoice.AmountDueCents,
		Currency:             invoice.Currency,
		HostedInvoiceURL:     invoice.HostedInvoiceURL,
		Number:               invoice.Number,
		MirroredToFreshBooks: mirrored,
	}, nil
}

// HandleWebhookEvent проверяет подпись, разбирает и обрабатывает событие Stripe.
// Повторные доставки одного события игнорируются
func (s *Service) HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) (string, error) {
	event, err := s.stripeClient.ConstructWebhookEvent(payload, sigHeader)
	if err != nil {
		s.observeWebhook("unknown", "invalid_signature")
		s.logger.Warn("HandleWebhookEvent: signature verification failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	eventType := string(event.Type)

	if s.alreadyProcessed(event.ID) {
		s.observeWebhook(eventType, "duplicate")
		s.logger.Info("HandleWebhookEvent: duplicate event id=%s ignored", event.ID)
		return WebhookDuplicate, nil
	}

	switch eventType {
	case "invoice.paid":
		invoice, err := parseInvoice(event)
		if err != nil {
			s.observeWebhook(eventType, "error")
			return "", err
		}
		s.notifier.InvoicePaid(ctx, invoice.ID, customerEmail(invoice), invoice.AmountPaid)
		s.observeWebhook(eventType, "processed")
		s.logger.Info("HandleWebhookEvent: invoice id=%s paid", invoice.ID)
		return WebhookProcessed, nil

	case "invoice.payment_failed":
		invoice, err := parseInvoice(event)
		if err != nil {
			s.observeWebhook(eventType, "error")
			return "", err
		}
		s.notifier.InvoicePaymentFailed(ctx, invoice.ID, customerEmail(invoice))
		s.observeWebhook(eventType, "processed")
		s.logger.Info("HandleWebhookEvent: invoice id=%s payment failed", invoice.ID)
		return WebhookProcessed, nil

	default:
		s.observeWebhook(eventType, "ignored")
		s.logger.Info("HandleWebhookEvent: event type=%s ignored", eventType)
		return WebhookIgnored, nil
	}
}

// mirrorToFreshBooks создает зеркальную копию счета; сбой не критичен
func (s *Service) mirrorToFreshBooks(ctx context.Context, req *CreateInvoiceRequest, invoice *stripeinvoice.Invoice) bool {
	if s.freshbooks == nil {
		return false
	}

	_, err := s.freshbooks.CreateInvoiceWithGracefulDegradation(ctx, &freshbooks.Invoice{
		Email: req.CustomerEmail,
		Lines: []freshbooks.Line{
			{
				Name:     req.Description,
				Qty:      1,
				UnitCost: freshbooks.Amount{Amount: fmt.Sprintf("%.2f", float64(req.AmountCents)/100), Code: strings.ToUpper(req.Currency)},
			},
		},
	})
	if err != nil {
		// ErrServiceDegraded уже залогирован клиентом
		if !errors.Is(err, freshbooks.ErrServiceDegraded) {
			s.logger.Error("CreateInvoice: freshbooks mirror failed: %v", err)
		}
		return false
	}

	return true
}

// alreadyProcessed отмечает событие обработанным и сообщает, было ли оно раньше
func (s *Service) alreadyProcessed(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.processed[eventID]; ok {
		return true
	}
	s.processed[eventID] = struct{}{}
	return false
}

func (s *Service) observeWebhook(eventType, status string) {
	if s.metrics != nil {
		s.metrics.StripeWebhookEventsTotal.WithLabelValues(eventType, status).Inc()
	}
}

// parseInvoice разбирает объект счета из события
func parseInvoice(event stripe.Event) (*stripe.Invoice, error) {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return nil, fmt.Errorf("%w: failed to parse invoice payload: %v", ErrInternal, err)
	}
	return &invoice, nil
}

// customerEmail извлекает email клиента из счета
func customerEmail(invoice *stripe.Invoice) string {
	if invoice.CustomerEmail != "" {
		return invoice.CustomerEmail
	}
	if invoice.Customer != nil {
		return invoice.Customer.Email
	}
	return ""
}

// validateCreateInvoiceRequest проверяет валидность запроса на счет
func validateCreateInvoiceRequest(req *CreateInvoiceRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is invalid", ErrInvalidInput)
	}
	if req.AmountCents <= 0 {
		return fmt.Errorf("%w: amountCents must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Currency) == "" {
		return fmt.Errorf("%w: currency is required", ErrInvalidInput)
	}
	return nil
}
