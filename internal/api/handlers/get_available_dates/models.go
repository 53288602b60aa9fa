package get_available_dates

import (
	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_dates"
)

// AvailableDateResponse HTTP model одной даты
type AvailableDateResponse struct {
	Date           string `json:"date"`
	AvailableSlots int    `json:"availableSlots"`
}

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Dates []AvailableDateResponse `json:"dates"`
	Total int                     `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]AvailableDateResponse, 0, len(resp.Dates))
	for _, date := range resp.Dates {
		dates = append(dates, AvailableDateResponse{
			Date:           date.Date.Format(domain.DateFormat),
			AvailableSlots: date.AvailableSlots,
		})
	}

	return &AvailableDatesResponse{
		Dates: dates,
		Total: len(dates),
	}
}
