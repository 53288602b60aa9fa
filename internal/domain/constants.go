package domain

// Default calendar configuration values
const (
	DefaultSlotDurationMinutes = 120
	DefaultBufferMinutes       = 30
	DefaultMaxAdvanceDays      = 30
	DefaultTimezone            = "America/New_York"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 hours
	MinBufferMinutes       = 0
	MaxBufferMinutes       = 120
	MinAdvanceDays         = 1
	MaxAdvanceDaysLimit    = 365 // 1 year
	MaxNotesLength         = 1000
	MaxMessageLength       = 2000
	MaxNameLength          = 120
	MaxAddressLength       = 300
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы записей, занимающих свой слот
// Используется при подсчете доступности слотов
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}

// AllStatuses все допустимые статусы записи
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}
