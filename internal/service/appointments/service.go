package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SiteOpsService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/appointments/models"
)

// Service сервис для работы с существующими записями
type Service struct {
	repo     AppointmentRepository
	notifier Notifier
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetByDate получает все записи на дату, отсортированные по времени начала
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByDate: fetching appointments for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	appointments, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d appointments for date=%s",
		len(appointments), date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Отмена освобождает слот: доступность всегда пересчитывается по статусам
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCancelled
	s.notifier.AppointmentCancelled(ctx, appt)

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// UpdateStatus обновляет статус записи
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, status)

	newStatus, ok := domain.ParseAppointmentStatus(status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", status, id)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, newStatus)
	return nil
}
