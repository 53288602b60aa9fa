package create_invoice

import (
	"context"

	"github.com/m04kA/SMC-SiteOpsService/internal/service/billing"
)

type BillingService interface {
	CreateInvoice(ctx context.Context, req *billing.CreateInvoiceRequest) (*billing.InvoiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
