package twilio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки SMS через Twilio REST API
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Twilio
func NewClient(baseURL, accountSID, authToken, from string, timeout time.Duration, log Logger) *Client {
	if baseURL == "" {
		baseURL = "https://api.twilio.com"
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendSMS отправляет SMS на указанный номер
func (c *Client) SendSMS(ctx context.Context, to, body string) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("%w: recipient is empty", ErrInvalidMessage)
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: body is empty", ErrInvalidMessage)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("twilio: sent SMS to=%s", to)
	return nil
}
