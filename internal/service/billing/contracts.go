package billing

import (
	"context"

	"github.com/stripe/stripe-go/v79"

	"github.com/m04kA/SMC-SiteOpsService/internal/integrations/freshbooks"
	"github.com/m04kA/SMC-SiteOpsService/internal/integrations/stripeinvoice"
)

// StripeClient интерфейс клиента Stripe
type StripeClient interface {
	CreateInvoice(ctx context.Context, req *stripeinvoice.InvoiceRequest) (*stripeinvoice.Invoice, error)
	ConstructWebhookEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

// FreshBooksClient интерфейс клиента FreshBooks
type FreshBooksClient interface {
	CreateInvoiceWithGracefulDegradation(ctx context.Context, invoice *freshbooks.Invoice) (*freshbooks.Invoice, error)
}

// Notifier интерфейс уведомлений о платежных событиях
type Notifier interface {
	InvoicePaid(ctx context.Context, invoiceID, customerEmail string, amountCents int64)
	InvoicePaymentFailed(ctx context.Context, invoiceID, customerEmail string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
