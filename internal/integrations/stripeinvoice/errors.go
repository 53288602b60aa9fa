package stripeinvoice

import "errors"

var (
	// ErrInvalidRequest возвращается при некорректных параметрах счета
	ErrInvalidRequest = errors.New("stripeinvoice client: invalid request")

	// ErrStripeAPI возвращается при ошибках Stripe API
	ErrStripeAPI = errors.New("stripeinvoice client: stripe api error")

	// ErrInvalidSignature возвращается при невалидной подписи вебхука
	ErrInvalidSignature = errors.New("stripeinvoice client: invalid webhook signature")
)
