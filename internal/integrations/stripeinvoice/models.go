package stripeinvoice

import (
	"fmt"
	"strings"
)

// InvoiceRequest параметры выставляемого счета
type InvoiceRequest struct {
	CustomerName  string // Имя клиента
	CustomerEmail string // Email клиента
	AmountCents   int64  // Сумма в минимальных единицах валюты
	Currency      string // Код валюты (например, "usd")
	Description   string // Назначение платежа
}

// Invoice выставленный счет
type Invoice struct {
	ID               string `json:"id"`
	CustomerID       string `json:"customerId"`
	Status           string `json:"status"`
	AmountDueCents   int64  `json:"amountDueCents"`
	Currency         string `json:"currency"`
	HostedInvoiceURL string `json:"hostedInvoiceUrl,omitempty"`
	Number           string `json:"number,omitempty"`
}

// validate проверяет параметры счета
func (r *InvoiceRequest) validate() error {
	if r == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}
	if !strings.Contains(r.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is invalid", ErrInvalidRequest)
	}
	if r.AmountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Currency) == "" {
		return fmt.Errorf("%w: currency is required", ErrInvalidRequest)
	}
	return nil
}
