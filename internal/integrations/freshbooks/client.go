package freshbooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для зеркалирования счетов в FreshBooks
type Client struct {
	baseURL    string
	accountID  string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента FreshBooks
func NewClient(baseURL, accountID, token string, timeout time.Duration, log Logger) *Client {
	if baseURL == "" {
		baseURL = "https://api.freshbooks.com"
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		accountID: accountID,
		token:     token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateInvoice создает счет в FreshBooks
func (c *Client) CreateInvoice(ctx context.Context, invoice *Invoice) (*Invoice, error) {
	endpoint := fmt.Sprintf("%s/accounting/account/%s/invoices/invoices", c.baseURL, c.accountID)

	body, err := json.Marshal(map[string]interface{}{"invoice": invoice})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal invoice: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Response struct {
			Result struct {
				Invoice Invoice `json:"invoice"`
			} `json:"result"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &parsed.Response.Result.Invoice, nil
}

// CreateInvoiceWithGracefulDegradation создает счет с graceful degradation
// При недоступности FreshBooks возвращает ErrServiceDegraded: выставление
// основного счета через Stripe при этом не блокируется
func (c *Client) CreateInvoiceWithGracefulDegradation(ctx context.Context, invoice *Invoice) (*Invoice, error) {
	created, err := c.CreateInvoice(ctx, invoice)
	if err != nil {
		c.log.Error("FreshBooks unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("freshbooks: mirrored invoice id=%d", created.ID)
	return created, nil
}
