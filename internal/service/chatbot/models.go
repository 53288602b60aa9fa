package chatbot

import "time"

// Intent описание намерения: набор ключевых слов и готовый ответ
type Intent struct {
	Name       string   // Имя намерения (например, "pricing", "booking")
	Keywords   []string // Ключевые слова для распознавания
	Reply      string   // Ответ бота при совпадении
	OfferDates bool     // Дополнить ответ ближайшими свободными датами
}

// Request модель входящего сообщения
type Request struct {
	SessionID string // ID сессии; пустой - начать новую сессию
	Message   string // Текст сообщения клиента
}

// Response модель ответа бота
type Response struct {
	SessionID      string   `json:"sessionId"`
	Reply          string   `json:"reply"`
	Intent         string   `json:"intent"`
	SuggestedDates []string `json:"suggestedDates,omitempty"`
}

// session состояние диалога
type session struct {
	id         string
	messages   int
	lastSeen   time.Time
	lastIntent string
}
