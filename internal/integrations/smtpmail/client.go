package smtpmail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP-клиент для отправки почтовых уведомлений
type Client struct {
	addr     string
	from     string
	username string
	password string
	host     string
	log      Logger
}

// NewClient создает новый экземпляр SMTP-клиента
// Пустые username/password означают relay без аутентификации
func NewClient(host string, port int, username, password, from string, log Logger) *Client {
	return &Client{
		addr:     fmt.Sprintf("%s:%d", host, port),
		from:     strings.TrimSpace(from),
		username: username,
		password: password,
		host:     host,
		log:      log,
	}
}

// Send отправляет письмо одному получателю
func (c *Client) Send(to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("%w: recipient is empty", ErrInvalidMessage)
	}

	msg := buildMessage(c.from, to, subject, body)

	var auth smtp.Auth
	if c.username != "" {
		auth = smtp.PlainAuth("", c.username, c.password, c.host)
	}

	if err := smtp.SendMail(c.addr, auth, c.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("smtpmail: sent message to=%s, subject=%q", to, subject)
	return nil
}

// buildMessage собирает минимальное RFC 5322 сообщение
func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, body,
	)
}
