package chatbot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_dates"
)

type stubLogger struct{}

func (l *stubLogger) Info(format string, v ...interface{})  {}
func (l *stubLogger) Warn(format string, v ...interface{})  {}
func (l *stubLogger) Error(format string, v ...interface{}) {}

type stubDatesProvider struct {
	dates []time.Time
	err   error
	calls int
}

func (p *stubDatesProvider) Execute(_ context.Context, _ *get_available_dates.Request) (*get_available_dates.Response, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}

	resp := &get_available_dates.Response{}
	for _, d := range p.dates {
		resp.Dates = append(resp.Dates, get_available_dates.AvailableDate{Date: d, AvailableSlots: 2})
	}
	return resp, nil
}

func testIntents() []Intent {
	return []Intent{
		{
			Name:     "pricing",
			Keywords: []string{"цена", "стоимость", "price"},
			Reply:    "Базовая оценка зависит от типа проекта.",
		},
		{
			Name:       "booking",
			Keywords:   []string{"записаться", "консультация", "visit"},
			Reply:      "Давайте подберем время для выезда.",
			OfferDates: true,
		},
	}
}

func newTestService(dates DatesProvider) *Service {
	return NewService(
		"Здравствуйте! Я помощник студии.",
		"Не понял вопрос, попробуйте переформулировать.",
		testIntents(),
		dates,
		nil,
		&stubLogger{},
	)
}

func TestProcessMessage_MatchesIntent(t *testing.T) {
	svc := newTestService(&stubDatesProvider{})

	resp, err := svc.ProcessMessage(context.Background(), &Request{Message: "Какая у вас цена на ремонт?"})
	require.NoError(t, err)

	assert.Equal(t, "pricing", resp.Intent)
	assert.Contains(t, resp.Reply, "Базовая оценка")
	assert.NotEmpty(t, resp.SessionID)
	assert.Empty(t, resp.SuggestedDates)
}

func TestProcessMessage_NewSessionGetsGreeting(t *testing.T) {
	svc := newTestService(&stubDatesProvider{})

	resp, err := svc.ProcessMessage(context.Background(), &Request{Message: "стоимость?"})
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "Здравствуйте")

	// Повторное сообщение в той же сессии - без приветствия
	resp2, err := svc.ProcessMessage(context.Background(), &Request{
		SessionID: resp.SessionID,
		Message:   "а точная цена?",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, resp2.SessionID)
	assert.NotContains(t, resp2.Reply, "Здравствуйте")
}

func TestProcessMessage_Fallback(t *testing.T) {
	svc := newTestService(&stubDatesProvider{})

	resp, err := svc.ProcessMessage(context.Background(), &Request{Message: "просто текст ни о чем"})
	require.NoError(t, err)

	assert.Equal(t, "fallback", resp.Intent)
	assert.Contains(t, resp.Reply, "Не понял вопрос")
}

func TestProcessMessage_BookingIntentSuggestsDates(t *testing.T) {
	dates := &stubDatesProvider{dates: []time.Time{
		time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
	}}
	svc := newTestService(dates)

	resp, err := svc.ProcessMessage(context.Background(), &Request{Message: "Хочу записаться на выезд"})
	require.NoError(t, err)

	assert.Equal(t, "booking", resp.Intent)
	// Не больше трех подсказок
	assert.Equal(t, []string{"2026-09-11", "2026-09-14", "2026-09-15"}, resp.SuggestedDates)
	assert.Equal(t, 1, dates.calls)
}

func TestProcessMessage_DatesFailureDoesNotBreakReply(t *testing.T) {
	svc := newTestService(&stubDatesProvider{err: errors.New("storage down")})

	resp, err := svc.ProcessMessage(context.Background(), &Request{Message: "нужна консультация"})
	require.NoError(t, err)

	assert.Equal(t, "booking", resp.Intent)
	assert.Empty(t, resp.SuggestedDates)
	assert.NotEmpty(t, resp.Reply)
}

func TestProcessMessage_EmptyMessageRejected(t *testing.T) {
	svc := newTestService(&stubDatesProvider{})

	_, err := svc.ProcessMessage(context.Background(), &Request{Message: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
