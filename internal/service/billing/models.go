package billing

// CreateInvoiceRequest модель запроса на выставление счета
type CreateInvoiceRequest struct {
	CustomerName  string // Имя клиента
	CustomerEmail string // Email клиента
	AmountCents   int64  // Сумма в минимальных единицах валюты
	Currency      string // Код валюты (например, "usd")
	Description   string // Назначение платежа
}

// InvoiceResponse выставленный счет
type InvoiceResponse struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	AmountDueCents   int64  `json:"amountDueCents"`
	Currency         string `json:"currency"`
	HostedInvoiceURL string `json:"hostedInvoiceUrl,omitempty"`
	Number           string `json:"number,omitempty"`

	// MirroredToFreshBooks false, если зеркалирование не удалось
	MirroredToFreshBooks bool `json:"mirroredToFreshbooks"`
}

// Результаты обработки вебхука
const (
	WebhookProcessed = "processed"
	WebhookDuplicate = "duplicate"
	WebhookIgnored   = "ignored"
)
