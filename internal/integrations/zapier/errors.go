package zapier

import "errors"

var (
	// ErrHookNotConfigured возвращается, когда hook URL не задан в конфигурации
	ErrHookNotConfigured = errors.New("zapier client: hook not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("zapier client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("zapier client: invalid response")
)
