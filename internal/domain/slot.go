package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// TimeSlot represents a computed appointment window.
// Слоты не хранятся - они каждый раз выводятся из рабочих часов
// и текущего состояния журнала записей.
type TimeSlot struct {
	ID            string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Available     bool
	Booked        bool
	AppointmentID *string
}

// SlotID детерминированный идентификатор слота: "YYYY-MM-DD_HH:MM"
// Одинаковые дата и время всегда дают один и тот же ID,
// что позволяет идемпотентно ссылаться на слот
func SlotID(date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%s_%s", date.Format(DateFormat), start)
}
