package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/internal/integrations/zapier"
	"github.com/m04kA/SMC-SiteOpsService/pkg/metrics"
)

// Каналы доставки уведомлений
const (
	channelEmail  = "email"
	channelSMS    = "sms"
	channelZapier = "zapier"
)

// Config адресаты и каналы уведомлений
type Config struct {
	Enabled        bool
	AdminEmail     string
	AdminPhone     string
	NotifyCustomer bool

	LeadHookURL    string
	BookingHookURL string
	InvoiceHookURL string
}

// Service рассылает уведомления о событиях по настроенным каналам.
// Доставка строго best-effort: сбой любого канала логируется и не
// влияет ни на другие каналы, ни на вызывающую операцию
type Service struct {
	cfg     Config
	email   EmailSender
	sms     SMSSender
	hooks   HookClient
	metrics *metrics.Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса уведомлений
// email, sms и hooks могут быть nil, если канал не настроен;
// metrics может быть nil, если метрики выключены
func NewService(cfg Config, email EmailSender, sms SMSSender, hooks HookClient, m *metrics.Metrics, logger Logger) *Service {
	return &Service{
		cfg:     cfg,
		email:   email,
		sms:     sms,
		hooks:   hooks,
		metrics: m,
		logger:  logger,
	}
}

// AppointmentBooked уведомляет о новой записи
func (s *Service) AppointmentBooked(ctx context.Context, appt *domain.Appointment) {
	if s.metrics != nil {
		s.metrics.AppointmentsBookedTotal.Inc()
	}
	if !s.cfg.Enabled {
		return
	}

	subject := fmt.Sprintf("Новая запись: %s %s", appt.Date.Format(domain.DateFormat), appt.StartTime)
	body := fmt.Sprintf(
		"Клиент: %s\nEmail: %s\nТелефон: %s\nДата: %s %s-%s\nПроект: %s\nАдрес: %s",
		appt.CustomerName, appt.CustomerEmail, appt.CustomerPhone,
		appt.Date.Format(domain.DateFormat), appt.StartTime, appt.EndTime,
		appt.ProjectType, appt.Address,
	)

	s.sendAdminEmail(subject, body)
	s.sendAdminSMS(ctx, fmt.Sprintf("Новая запись %s %s: %s", appt.Date.Format(domain.DateFormat), appt.StartTime, appt.CustomerName))

	if s.cfg.NotifyCustomer {
		customerBody := fmt.Sprintf(
			"Здравствуйте, %s!\n\nВаша запись подтверждена: %s с %s до %s.\nАдрес выезда: %s.",
			appt.CustomerName, appt.Date.Format(domain.DateFormat), appt.StartTime, appt.EndTime, appt.Address,
		)
		s.sendCustomerEmail(appt.CustomerEmail, "Ваша запись на выезд", customerBody)
	}

	s.triggerHook(ctx, s.cfg.BookingHookURL, map[string]interface{}{
		"event":         "appointment.booked",
		"appointmentId": appt.ID,
		"customerName":  appt.CustomerName,
		"customerEmail": appt.CustomerEmail,
		"date":          appt.Date.Format(domain.DateFormat),
		"startTime":     appt.StartTime.String(),
		"projectType":   appt.ProjectType,
	})
}

// AppointmentCancelled уведомляет об отмене записи
func (s *Service) AppointmentCancelled(ctx context.Context, appt *domain.Appointment) {
	if s.metrics != nil {
		s.metrics.AppointmentsCancelledTotal.Inc()
	}
	if !s.cfg.Enabled {
		return
	}

	subject := fmt.Sprintf("Отмена записи: %s %s", appt.Date.Format(domain.DateFormat), appt.StartTime)
	s.sendAdminEmail(subject, fmt.Sprintf("Клиент %s отменил запись на %s %s.",
		appt.CustomerName, appt.Date.Format(domain.DateFormat), appt.StartTime))

	if s.cfg.NotifyCustomer {
		s.sendCustomerEmail(appt.CustomerEmail, "Запись отменена",
			fmt.Sprintf("Здравствуйте, %s!\n\nВаша запись на %s %s отменена.",
				appt.CustomerName, appt.Date.Format(domain.DateFormat), appt.StartTime))
	}

	s.triggerHook(ctx, s.cfg.BookingHookURL, map[string]interface{}{
		"event":         "appointment.cancelled",
		"appointmentId": appt.ID,
		"date":          appt.Date.Format(domain.DateFormat),
		"startTime":     appt.StartTime.String(),
	})
}

// AppointmentRescheduled уведомляет о переносе записи
func (s *Service) AppointmentRescheduled(ctx context.Context, appt *domain.Appointment, oldDate time.Time, oldStart string) {
	if !s.cfg.Enabled {
		return
	}

	subject := fmt.Sprintf("Перенос записи: %s %s", appt.Date.Format(domain.DateFormat), appt.StartTime)
	s.sendAdminEmail(subject, fmt.Sprintf("Запись клиента %s перенесена с %s %s на %s %s.",
		appt.CustomerName, oldDate.Format(domain.DateFormat), oldStart,
		appt.Date.Format(domain.DateFormat), appt.StartTime))

	if s.cfg.NotifyCustomer {
		s.sendCustomerEmail(appt.CustomerEmail, "Запись перенесена",
			fmt.Sprintf("Здравствуйте, %s!\n\nВаша запись перенесена на %s с %s до %s.",
				appt.CustomerName, appt.Date.Format(domain.DateFormat), appt.StartTime, appt.EndTime))
	}

	s.triggerHook(ctx, s.cfg.BookingHookURL, map[string]interface{}{
		"event":         "appointment.rescheduled",
		"appointmentId": appt.ID,
		"oldDate":       oldDate.Format(domain.DateFormat),
		"oldStartTime":  oldStart,
		"date":          appt.Date.Format(domain.DateFormat),
		"startTime":     appt.StartTime.String(),
	})
}

// LeadCaptured уведомляет о новой заявке
func (s *Service) LeadCaptured(ctx context.Context, lead *domain.Lead) {
	if s.metrics != nil {
		s.metrics.LeadsCapturedTotal.Inc()
	}
	if !s.cfg.Enabled {
		return
	}

	subject := fmt.Sprintf("Новая заявка: %s", lead.Name)
	body := fmt.Sprintf("Имя: %s\nEmail: %s\nТелефон: %s\nИсточник: %s\nСообщение: %s",
		lead.Name, lead.Email, lead.Phone, lead.Source, lead.Message)

	s.sendAdminEmail(subject, body)
	s.sendAdminSMS(ctx, fmt.Sprintf("Новая заявка от %s (%s)", lead.Name, lead.Source))

	s.triggerHook(ctx, s.cfg.LeadHookURL, map[string]interface{}{
		"event":       "lead.captured",
		"leadId":      lead.ID,
		"name":        lead.Name,
		"email":       lead.Email,
		"phone":       lead.Phone,
		"projectType": lead.ProjectType,
		"source":      lead.Source,
	})
}

// InvoicePaid уведомляет об оплате счета
func (s *Service) InvoicePaid(ctx context.Context, invoiceID, customerEmail string, amountCents int64) {
	if !s.cfg.Enabled {
		return
	}

	s.sendAdminEmail("Счет оплачен",
		fmt.Sprintf("Счет %s на сумму %.2f оплачен (%s).", invoiceID, float64(amountCents)/100, customerEmail))

	s.triggerHook(ctx, s.cfg.InvoiceHookURL, map[string]interface{}{
		"event":       "invoice.paid",
		"invoiceId":   invoiceID,
		"email":       customerEmail,
		"amountCents": amountCents,
	})
}

// InvoicePaymentFailed уведомляет о неудачной оплате счета
func (s *Service) InvoicePaymentFailed(ctx context.Context, invoiceID, customerEmail string) {
	if !s.cfg.Enabled {
		return
	}

	s.sendAdminEmail("Оплата счета не прошла",
		fmt.Sprintf("Оплата счета %s не прошла (%s). Требуется связаться с клиентом.", invoiceID, customerEmail))

	s.triggerHook(ctx, s.cfg.InvoiceHookURL, map[string]interface{}{
		"event":     "invoice.payment_failed",
		"invoiceId": invoiceID,
		"email":     customerEmail,
	})
}

// Вспомогательные методы доставки

func (s *Service) sendAdminEmail(subject, body string) {
	if s.email == nil || s.cfg.AdminEmail == "" {
		return
	}
	s.observe(channelEmail, s.email.Send(s.cfg.AdminEmail, subject, body))
}

func (s *Service) sendCustomerEmail(to, subject, body string) {
	if s.email == nil || to == "" {
		return
	}
	s.observe(channelEmail, s.email.Send(to, subject, body))
}

func (s *Service) sendAdminSMS(ctx context.Context, body string) {
	if s.sms == nil || s.cfg.AdminPhone == "" {
		return
	}
	s.observe(channelSMS, s.sms.SendSMS(ctx, s.cfg.AdminPhone, body))
}

func (s *Service) triggerHook(ctx context.Context, hookURL string, payload map[string]interface{}) {
	if s.hooks == nil || hookURL == "" {
		return
	}

	err := s.hooks.Trigger(ctx, hookURL, payload)
	if errors.Is(err, zapier.ErrHookNotConfigured) {
		return
	}
	s.observe(channelZapier, err)
}

// observe учитывает результат доставки в метриках и логе
func (s *Service) observe(channel string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		s.logger.Error("notifications: %s delivery failed: %v", channel, err)
	}

	if s.metrics != nil {
		s.metrics.NotificationsDispatchTotal.WithLabelValues(channel, status).Inc()
	}
}
