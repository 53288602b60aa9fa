package domain

import (
	"time"

	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled on-site visit
type Appointment struct {
	ID string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	ProjectType string
	Address     string
	Notes       *string

	Status        AppointmentStatus
	EstimatedCost *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает свой слот
// Отмененные записи слот не занимают - доступность всегда
// пересчитывается по статусам, отдельного освобождения слота нет
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
// Отмена допустима из любого статуса, кроме повторной отмены
func (a *Appointment) CanBeCancelled() bool {
	return a.Status != StatusCancelled
}

// CanBeRescheduled returns true if the appointment can be moved to another slot
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// ParseAppointmentStatus валидирует строковый статус
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}
