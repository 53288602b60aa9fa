package create_appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

// UseCase use case для создания записи на выезд
type UseCase struct {
	store        AppointmentStore
	slots        SlotsProvider
	calendar     *domain.CalendarConfig
	prices       map[string]float64
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
	prices map[string]float64,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		slots:        slots,
		calendar:     calendar,
		prices:       prices,
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

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка доступности слота и создание записи выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: email=%s, date=%s, time=%s, project=%s",
		req.CustomerEmail, req.Date.Format(domain.DateFormat), req.StartTime, req.ProjectType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в таймзоне бизнеса
	now := uc.timeProvider.Now().In(uc.calendar.Location)

	// 3. Валидация даты: не в прошлом и не дальше горизонта бронирования
	if err := validateDate(req.Date, now, uc.calendar.MaxAdvanceDays); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем, что в этот день бизнес работает
	if !uc.calendar.HoursForDay(req.Date).Enabled {
		uc.logger.Warn("CreateAppointment: business is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrBusinessClosed
	}

	// 5. Определяем оценку стоимости по типу проекта
	basePrice, ok := uc.prices[req.ProjectType]
	if !ok {
		uc.logger.Warn("CreateAppointment: unknown project type %q", req.ProjectType)
		return nil, ErrUnknownProjectType
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Проверка слота и создание записи в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Заново выводим слоты дня по текущему состоянию журнала
		slotsResp, err := uc.slots.Execute(txCtx, &get_available_slots.Request{Date: req.Date})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get slots: %v", err)
			return fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}

		// 6.2. Запрошенное время должно быть началом слота из сетки
		slot := findSlotByStart(slotsResp.Slots, req.StartTime)
		if slot == nil {
			uc.logger.Warn("CreateAppointment: time %s is not a valid slot start on %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrInvalidTimeSlot
		}

		// 6.3. Слот должен быть доступен
		if !slot.Available {
			uc.logger.Warn("CreateAppointment: slot %s is not available", slot.ID)
			return ErrSlotNotAvailable
		}

		// 6.4. Создаем запись
		appointment := &domain.Appointment{
			ID:            uuid.NewString(),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			ProjectType:   req.ProjectType,
			Address:       req.Address,
			Notes:         req.Notes,
			Status:        domain.StatusScheduled,
			EstimatedCost: &basePrice,
		}

		created, err := uc.store.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// 7. Уведомления отправляются после фиксации транзакции
	uc.notifier.AppointmentBooked(ctx, result)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		Date:          result.Date,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		ProjectType:   result.ProjectType,
		Address:       result.Address,
		Notes:         result.Notes,
		Status:        string(result.Status),
		EstimatedCost: result.EstimatedCost,
		CreatedAt:     result.CreatedAt,
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
