package get_available_slots

import "fmt"

// validateRequest проверяет валидность запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ExcludeAppointmentID != nil && *req.ExcludeAppointmentID == "" {
		return fmt.Errorf("%w: excludeAppointmentID must not be empty", ErrInvalidInput)
	}

	return nil
}
