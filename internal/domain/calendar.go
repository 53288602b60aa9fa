package domain

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// DayHours расписание работы на один день недели
type DayHours struct {
	Enabled bool
	Open    types.TimeString
	Close   types.TimeString
}

// BusinessHours расписание работы по дням недели
type BusinessHours struct {
	Monday    DayHours
	Tuesday   DayHours
	Wednesday DayHours
	Thursday  DayHours
	Friday    DayHours
	Saturday  DayHours
	Sunday    DayHours
}

// CalendarConfig represents the static slot configuration of the business.
// Задается один раз при старте из TOML-конфига и далее не меняется.
type CalendarConfig struct {
	Hours               BusinessHours
	SlotDurationMinutes int
	BufferMinutes       int
	MaxAdvanceDays      int
	Timezone            string
	Location            *time.Location
}

// HoursForDay возвращает расписание работы на день недели указанной даты
func (c *CalendarConfig) HoursForDay(date time.Time) DayHours {
	switch date.Weekday() {
	case time.Monday:
		return c.Hours.Monday
	case time.Tuesday:
		return c.Hours.Tuesday
	case time.Wednesday:
		return c.Hours.Wednesday
	case time.Thursday:
		return c.Hours.Thursday
	case time.Friday:
		return c.Hours.Friday
	case time.Saturday:
		return c.Hours.Saturday
	case time.Sunday:
		return c.Hours.Sunday
	default:
		return DayHours{Enabled: false}
	}
}

// StepMinutes шаг между началами соседних слотов: длительность плюс буфер
func (c *CalendarConfig) StepMinutes() int {
	return c.SlotDurationMinutes + c.BufferMinutes
}

// ProjectType тип проекта с базовой оценкой стоимости
type ProjectType struct {
	Name      string
	BasePrice float64
}
