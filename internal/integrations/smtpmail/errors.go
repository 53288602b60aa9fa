package smtpmail

import "errors"

var (
	// ErrInvalidMessage возвращается при некорректных параметрах письма
	ErrInvalidMessage = errors.New("smtpmail client: invalid message")

	// ErrSendFailed возвращается при ошибке отправки через SMTP-сервер
	ErrSendFailed = errors.New("smtpmail client: send failed")
)
