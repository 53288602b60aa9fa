package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	storage "github.com/m04kA/SMC-SiteOpsService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// UseCase use case для переноса записи на другой слот
type UseCase struct {
	store        AppointmentStore
	slots        SlotsProvider
	calendar     *domain.CalendarConfig
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store AppointmentStore,
	slots SlotsProvider,
	calendar *domain.CalendarConfig,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		slots:        slots,
		calendar:     calendar,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case переноса записи
// Проверка целевого слота и обновление записи выполняются в сериализуемой
// транзакции; при любой ошибке исходная запись остается неизменной
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%s, newDate=%s, newTime=%s",
		req.AppointmentID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в таймзоне бизнеса
	now := uc.timeProvider.Now().In(uc.calendar.Location)

	// 3. Валидация новой даты
	if err := validateDate(req.NewDate, now, uc.calendar.MaxAdvanceDays); err != nil {
		uc.logger.Warn("RescheduleAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем, что в новую дату бизнес работает
	if !uc.calendar.HoursForDay(req.NewDate).Enabled {
		uc.logger.Warn("RescheduleAppointment: business is closed on %s",
			req.NewDate.Format(domain.DateFormat))
		return nil, ErrBusinessClosed
	}

	var result *domain.Appointment
	var oldDate = req.NewDate
	var oldStart string

	// 5. Перенос в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем запись
		appointment, err := uc.store.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, storage.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%s: %v",
				req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 5.2. Перенос допустим только для предстоящих записей
		if !appointment.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%s in status %s cannot be rescheduled",
				appointment.ID, appointment.Status)
			return ErrCannotReschedule
		}

		oldDate = appointment.Date
		oldStart = appointment.StartTime.String()

		// 5.3. Выводим слоты целевой даты, игнорируя собственный слот записи:
		// перенос внутри того же дня не должен блокироваться самой записью
		slotsResp, err := uc.slots.Execute(txCtx, &get_available_slots.Request{
			Date:                 req.NewDate,
			ExcludeAppointmentID: &appointment.ID,
		})
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get slots: %v", err)
			return fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}

		// 5.4. Новое время должно быть началом слота из сетки
		slot := findSlotByStart(slotsResp.Slots, req.NewStartTime)
		if slot == nil {
			uc.logger.Warn("RescheduleAppointment: time %s is not a valid slot start on %s",
				req.NewStartTime, req.NewDate.Format(domain.DateFormat))
			return ErrInvalidTimeSlot
		}

		// 5.5. Целевой слот должен быть доступен
		if !slot.Available {
			uc.logger.Warn("RescheduleAppointment: slot %s is not available", slot.ID)
			return ErrSlotNotAvailable
		}

		// 5.6. Обновляем запись
		appointment.Date = req.NewDate
		appointment.StartTime = slot.StartTime
		appointment.EndTime = slot.EndTime

		updated, err := uc.store.Update(txCtx, appointment)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%s: %v",
				appointment.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully moved appointment id=%s to %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime)

	// 6. Уведомления отправляются после фиксации транзакции
	uc.notifier.AppointmentRescheduled(ctx, result, oldDate, oldStart)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		Date:          result.Date,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		ProjectType:   result.ProjectType,
		Status:        string(result.Status),
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// findSlotByStart ищет слот с указанным временем начала
func findSlotByStart(slots []get_available_slots.Slot, start types.TimeString) *get_available_slots.Slot {
	for i := range slots {
		if slots[i].StartTime == start {
			return &slots[i]
		}
	}
	return nil
}
