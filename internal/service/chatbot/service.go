package chatbot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_dates"
	"github.com/m04kA/SMC-SiteOpsService/pkg/metrics"
)

// Горизонт подсказки дат в ответе бота
const suggestedDatesHorizon = 7

// Максимум дат в подсказке
const maxSuggestedDates = 3

// Service чат-бот с распознаванием намерений по ключевым словам.
// Сессии живут в памяти; история не персистится.
type Service struct {
	greeting      string
	fallbackReply string
	intents       []Intent

	dates   DatesProvider
	metrics *metrics.Metrics
	logger  Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService создает новый экземпляр сервиса чат-бота
// metrics может быть nil, если метрики выключены
func NewService(greeting, fallbackReply string, intents []Intent, dates DatesProvider, m *metrics.Metrics, logger Logger) *Service {
	return &Service{
		greeting:      greeting,
		fallbackReply: fallbackReply,
		intents:       intents,
		dates:         dates,
		metrics:       m,
		logger:        logger,
		sessions:      make(map[string]*session),
	}
}

// ProcessMessage обрабатывает входящее сообщение и возвращает ответ бота
func (s *Service) ProcessMessage(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	if len(req.Message) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	sess, isNew := s.touchSession(req.SessionID)

	intent := s.matchIntent(req.Message)

	intentName := "fallback"
	reply := s.fallbackReply
	if intent != nil {
		intentName = intent.Name
		reply = intent.Reply
	}

	// Новая сессия начинается с приветствия
	if isNew && s.greeting != "" {
		reply = s.greeting + "\n\n" + reply
	}

	resp := &Response{
		SessionID: sess.id,
		Reply:     reply,
		Intent:    intentName,
	}

	// Намерение записи дополняется ближайшими свободными датами
	if intent != nil && intent.OfferDates {
		resp.SuggestedDates = s.suggestDates(ctx)
	}

	s.rememberIntent(sess.id, intentName)

	if s.metrics != nil {
		s.metrics.ChatbotMessagesTotal.WithLabelValues(intentName).Inc()
	}

	s.logger.Info("Chatbot: session=%s, intent=%s", sess.id, intentName)
	return resp, nil
}

// touchSession находит или создает сессию
func (s *Service) touchSession(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			sess.messages++
			sess.lastSeen = time.Now()
			return sess, false
		}
	}

	sess := &session{
		id:       uuid.NewString(),
		messages: 1,
		lastSeen: time.Now(),
	}
	s.sessions[sess.id] = sess
	return sess, true
}

// rememberIntent сохраняет последнее распознанное намерение сессии
func (s *Service) rememberIntent(sessionID, intent string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastIntent = intent
	}
}

// matchIntent ищет первое намерение, чье ключевое слово встречается в сообщении.
// Порядок намерений в конфигурации задает приоритет
func (s *Service) matchIntent(message string) *Intent {
	lower := strings.ToLower(message)

	for i := range s.intents {
		for _, keyword := range s.intents[i].Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return &s.intents[i]
			}
		}
	}

	return nil
}

// suggestDates возвращает ближайшие даты со свободными слотами.
// Сбой подбора дат не ломает ответ бота
func (s *Service) suggestDates(ctx context.Context) []string {
	resp, err := s.dates.Execute(ctx, &get_available_dates.Request{DaysAhead: suggestedDatesHorizon})
	if err != nil {
		s.logger.Warn("Chatbot: failed to suggest dates: %v", err)
		return nil
	}

	result := make([]string, 0, maxSuggestedDates)
	for _, d := range resp.Dates {
		if len(result) == maxSuggestedDates {
			break
		}
		result = append(result, d.Date.Format(domain.DateFormat))
	}

	return result
}
