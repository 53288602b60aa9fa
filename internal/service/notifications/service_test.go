package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/pkg/types"
)

type stubLogger struct{}

func (l *stubLogger) Info(format string, v ...interface{})  {}
func (l *stubLogger) Warn(format string, v ...interface{})  {}
func (l *stubLogger) Error(format string, v ...interface{}) {}

type fakeEmail struct {
	sent []string // получатели
	err  error
}

func (f *fakeEmail) Send(to, subject, body string) error {
	f.sent = append(f.sent, to)
	return f.err
}

type fakeSMS struct {
	sent []string
	err  error
}

func (f *fakeSMS) SendSMS(_ context.Context, to, body string) error {
	f.sent = append(f.sent, to)
	return f.err
}

type fakeHooks struct {
	urls   []string
	events []string
	err    error
}

func (f *fakeHooks) Trigger(_ context.Context, hookURL string, payload interface{}) error {
	f.urls = append(f.urls, hookURL)
	if m, ok := payload.(map[string]interface{}); ok {
		if event, ok := m["event"].(string); ok {
			f.events = append(f.events, event)
		}
	}
	return f.err
}

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:            "appt-1",
		CustomerName:  "Анна Соколова",
		CustomerEmail: "anna@example.com",
		CustomerPhone: "+15550110",
		Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime("10:30"),
		EndTime:       mustTime("12:30"),
		ProjectType:   "kitchen_remodel",
		Address:       "пр. Речной, 4",
		Status:        domain.StatusScheduled,
	}
}

func testConfig() Config {
	return Config{
		Enabled:        true,
		AdminEmail:     "owner@example.com",
		AdminPhone:     "+15550100",
		NotifyCustomer: true,
		LeadHookURL:    "https://hooks.zapier.com/lead",
		BookingHookURL: "https://hooks.zapier.com/booking",
		InvoiceHookURL: "https://hooks.zapier.com/invoice",
	}
}

func TestAppointmentBooked_FansOutToAllChannels(t *testing.T) {
	email := &fakeEmail{}
	sms := &fakeSMS{}
	hooks := &fakeHooks{}
	svc := NewService(testConfig(), email, sms, hooks, nil, &stubLogger{})

	svc.AppointmentBooked(context.Background(), testAppointment())

	// Письмо владельцу и письмо клиенту
	require.Len(t, email.sent, 2)
	assert.Equal(t, "owner@example.com", email.sent[0])
	assert.Equal(t, "anna@example.com", email.sent[1])

	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+15550100", sms.sent[0])

	require.Len(t, hooks.events, 1)
	assert.Equal(t, "appointment.booked", hooks.events[0])
	assert.Equal(t, "https://hooks.zapier.com/booking", hooks.urls[0])
}

func TestAppointmentBooked_CustomerOptOut(t *testing.T) {
	email := &fakeEmail{}
	cfg := testConfig()
	cfg.NotifyCustomer = false
	svc := NewService(cfg, email, &fakeSMS{}, &fakeHooks{}, nil, &stubLogger{})

	svc.AppointmentBooked(context.Background(), testAppointment())

	require.Len(t, email.sent, 1)
	assert.Equal(t, "owner@example.com", email.sent[0])
}

func TestChannelFailuresDoNotPropagate(t *testing.T) {
	email := &fakeEmail{err: errors.New("smtp down")}
	sms := &fakeSMS{err: errors.New("twilio down")}
	hooks := &fakeHooks{err: errors.New("zapier down")}
	svc := NewService(testConfig(), email, sms, hooks, nil, &stubLogger{})

	// Ни один сбой канала не должен привести к панике или ошибке
	svc.AppointmentBooked(context.Background(), testAppointment())
	svc.AppointmentCancelled(context.Background(), testAppointment())
	svc.LeadCaptured(context.Background(), &domain.Lead{ID: "lead-1", Name: "Борис", Email: "boris@example.com", Source: "form"})

	// Каналы при этом вызывались
	assert.NotEmpty(t, email.sent)
	assert.NotEmpty(t, sms.sent)
	assert.NotEmpty(t, hooks.urls)
}

func TestDisabledNotificationsSkipChannels(t *testing.T) {
	email := &fakeEmail{}
	sms := &fakeSMS{}
	hooks := &fakeHooks{}
	cfg := testConfig()
	cfg.Enabled = false
	svc := NewService(cfg, email, sms, hooks, nil, &stubLogger{})

	svc.AppointmentBooked(context.Background(), testAppointment())
	svc.LeadCaptured(context.Background(), &domain.Lead{ID: "lead-1", Name: "Борис"})
	svc.InvoicePaid(context.Background(), "in_123", "anna@example.com", 150000)

	assert.Empty(t, email.sent)
	assert.Empty(t, sms.sent)
	assert.Empty(t, hooks.urls)
}

func TestAppointmentRescheduled_IncludesOldSlot(t *testing.T) {
	hooks := &fakeHooks{}
	svc := NewService(testConfig(), &fakeEmail{}, &fakeSMS{}, hooks, nil, &stubLogger{})

	oldDate := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	svc.AppointmentRescheduled(context.Background(), testAppointment(), oldDate, "08:00")

	require.Len(t, hooks.events, 1)
	assert.Equal(t, "appointment.rescheduled", hooks.events[0])
}

func TestInvoiceEvents(t *testing.T) {
	hooks := &fakeHooks{}
	email := &fakeEmail{}
	svc := NewService(testConfig(), email, &fakeSMS{}, hooks, nil, &stubLogger{})

	svc.InvoicePaid(context.Background(), "in_123", "anna@example.com", 150000)
	svc.InvoicePaymentFailed(context.Background(), "in_124", "anna@example.com")

	assert.Equal(t, []string{"invoice.paid", "invoice.payment_failed"}, hooks.events)
	assert.Len(t, email.sent, 2)
}

func TestNilChannelsAreSkipped(t *testing.T) {
	svc := NewService(testConfig(), nil, nil, nil, nil, &stubLogger{})

	// Отсутствующие каналы просто пропускаются
	svc.AppointmentBooked(context.Background(), testAppointment())
}
