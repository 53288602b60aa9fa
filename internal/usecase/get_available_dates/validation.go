package get_available_dates

import "fmt"

// validateRequest проверяет валидность запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.DaysAhead < 0 {
		return fmt.Errorf("%w: daysAhead must not be negative", ErrInvalidInput)
	}

	return nil
}
