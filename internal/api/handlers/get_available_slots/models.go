package get_available_slots

import (
	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model одного слота
type SlotResponse struct {
	ID            string  `json:"id"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Available     bool    `json:"available"`
	AppointmentID *string `json:"appointmentId,omitempty"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:            slot.ID,
			StartTime:     slot.StartTime.String(),
			EndTime:       slot.EndTime.String(),
			Available:     slot.Available,
			AppointmentID: slot.AppointmentID,
		})
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
