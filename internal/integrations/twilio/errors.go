package twilio

import "errors"

var (
	// ErrInvalidMessage возвращается при некорректных параметрах сообщения
	ErrInvalidMessage = errors.New("twilio client: invalid message")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("twilio client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("twilio client: invalid response")
)
