package zapier

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

// Client клиент для запуска Zapier-хуков.
// Каждое событие отправляется JSON-ом на свой hook URL;
// пустой URL означает, что хук не настроен
type Client struct {
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Zapier
func NewClient(timeout time.Duration, log Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Trigger отправляет событие на hook URL
func (c *Client) Trigger(ctx context.Context, hookURL string, payload interface{}) error {
	if strings.TrimSpace(hookURL) == "" {
		return ErrHookNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("zapier: triggered hook %s", hookURL)
	return nil
}
