package billing

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSignature возвращается при невалидной подписи вебхука
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrPaymentProvider возвращается при ошибках платежного провайдера
	ErrPaymentProvider = errors.New("payment provider error")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
