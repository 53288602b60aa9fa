package stripeinvoice

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/invoice"
	"github.com/stripe/stripe-go/v79/invoiceitem"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Срок оплаты выставленного счета
const invoiceDaysUntilDue = 30

// Client клиент для выставления счетов через Stripe
type Client struct {
	webhookSecret    string
	webhookTolerance time.Duration
	log              Logger
}

// NewClient создает новый экземпляр клиента Stripe
// apiKey устанавливается глобально для stripe-go
func NewClient(apiKey, webhookSecret string, webhookTolerance time.Duration, log Logger) *Client {
	stripe.Key = apiKey
	return &Client{
		webhookSecret:    webhookSecret,
		webhookTolerance: webhookTolerance,
		log:              log,
	}
}

// CreateInvoice выставляет счет клиенту: создает customer, строку счета,
// затем финализирует счет для отправки
// stripe-go не принимает context в вызовах API; ctx оставлен в сигнатуре
// для единообразия с остальными интеграциями
func (c *Client) CreateInvoice(_ context.Context, req *InvoiceRequest) (*Invoice, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	cust, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(req.CustomerEmail),
		Name:  stripe.String(req.CustomerName),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create customer: %v", ErrStripeAPI, err)
	}

	_, err = invoiceitem.New(&stripe.InvoiceItemParams{
		Customer:    stripe.String(cust.ID),
		Amount:      stripe.Int64(req.AmountCents),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create invoice item: %v", ErrStripeAPI, err)
	}

	draft, err := invoice.New(&stripe.InvoiceParams{
		Customer:                    stripe.String(cust.ID),
		CollectionMethod:            stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:                stripe.Int64(invoiceDaysUntilDue),
		PendingInvoiceItemsBehavior: stripe.String("include"),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create invoice: %v", ErrStripeAPI, err)
	}

	finalized, err := invoice.FinalizeInvoice(draft.ID, &stripe.InvoiceFinalizeInvoiceParams{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to finalize invoice: %v", ErrStripeAPI, err)
	}

	c.log.Info("stripeinvoice: created invoice id=%s for customer=%s", finalized.ID, cust.ID)

	return &Invoice{
		ID:               finalized.ID,
		CustomerID:       cust.ID,
		Status:           string(finalized.Status),
		AmountDueCents:   finalized.AmountDue,
		Currency:         string(finalized.Currency),
		HostedInvoiceURL: finalized.HostedInvoiceURL,
		Number:           finalized.Number,
	}, nil
}

// ConstructWebhookEvent проверяет подпись и разбирает событие вебхука.
// Проверка подписи и есть аутентификация этого эндпоинта
func (c *Client) ConstructWebhookEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEventWithTolerance(payload, sigHeader, c.webhookSecret, c.webhookTolerance)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return event, nil
}
