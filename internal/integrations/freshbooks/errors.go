package freshbooks

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("freshbooks client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("freshbooks client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что FreshBooks недоступен и счет не был отзеркален
	ErrServiceDegraded = errors.New("freshbooks unavailable: graceful degradation applied")
)
